package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dev-devfero/talaash/api"
	"github.com/dev-devfero/talaash/pkg/models"
	"github.com/dev-devfero/talaash/pkg/repository/mock"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthHandlers(t *testing.T) {
	secret := "testsecret"
	tokenDur := 1 * time.Hour

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		prepare    func(m *mock.Mocks)
		wantStatus int
		checkBody  func(t *testing.T, body []byte)
	}{
		{
			name:       "Signup_InvalidRequest",
			method:     http.MethodPost,
			path:       "/signup",
			body:       "not a json",
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signup_MissingFields_Name",
			method:     http.MethodPost,
			path:       "/signup",
			body:       map[string]string{"email": "alice@example.com", "password": "s3cret"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signup_MissingFields_Email",
			method:     http.MethodPost,
			path:       "/signup",
			body:       map[string]string{"name": "Alice", "password": "s3cret"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signup_MissingFields_Password",
			method:     http.MethodPost,
			path:       "/signup",
			body:       map[string]string{"name": "Alice", "email": "alice@example.com"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signup_Success",
			method:     http.MethodPost,
			path:       "/signup",
			body:       map[string]string{"name": "Alice", "email": "alice@example.com", "password": "s3cret"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, b []byte) {
				var ar struct {
					Token string `json:"token"`
				}
				if err := json.Unmarshal(b, &ar); err != nil {
					t.Fatalf("unmarshal token: %v", err)
				}
				if ar.Token == "" {
					t.Fatalf("empty token")
				}
				tok, err := jwt.Parse(ar.Token, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
				if err != nil {
					t.Fatalf("invalid token: %v", err)
				}
				claims := tok.Claims.(jwt.MapClaims)
				if uid, _ := claims["user_id"].(string); uid == "" {
					t.Fatalf("token missing user_id claim: %v", claims)
				}
			},
		},
		{
			name:   "Signup_DuplicateEmail",
			method: http.MethodPost,
			path:   "/signup",
			body:   map[string]string{"name": "Dup", "email": "dup@example.com", "password": "pw"},
			prepare: func(m *mock.Mocks) {
				m.Accounts.CreateErr = fmt.Errorf("unique constraint")
			},
			wantStatus: http.StatusInternalServerError,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signin_InvalidRequest",
			method:     http.MethodPost,
			path:       "/signin",
			body:       "not a json",
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signin_MissingFields_Email",
			method:     http.MethodPost,
			path:       "/signin",
			body:       map[string]string{"password": "nop"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusBadRequest,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:       "Signin_UnknownEmail",
			method:     http.MethodPost,
			path:       "/signin",
			body:       map[string]string{"email": "nobody@example.com", "password": "pw"},
			prepare:    func(m *mock.Mocks) {},
			wantStatus: http.StatusUnauthorized,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:   "Signin_WrongPassword",
			method: http.MethodPost,
			path:   "/signin",
			body:   map[string]string{"email": "bob@example.com", "password": "wrong"},
			prepare: func(m *mock.Mocks) {
				hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
				m.Accounts.Stored = &models.Account{ID: "acc-1", Name: "Bob", Email: "bob@example.com", PasswordHash: string(hash)}
			},
			wantStatus: http.StatusUnauthorized,
			checkBody:  func(t *testing.T, b []byte) {},
		},
		{
			name:   "Signin_Success",
			method: http.MethodPost,
			path:   "/signin",
			body:   map[string]string{"email": "bob@example.com", "password": "right"},
			prepare: func(m *mock.Mocks) {
				hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
				m.Accounts.Stored = &models.Account{ID: "acc-1", Name: "Bob", Email: "bob@example.com", PasswordHash: string(hash)}
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, b []byte) {
				var ar struct {
					Token string `json:"token"`
				}
				if err := json.Unmarshal(b, &ar); err != nil {
					t.Fatalf("unmarshal token: %v", err)
				}
				tok, err := jwt.Parse(ar.Token, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
				if err != nil {
					t.Fatalf("invalid token: %v", err)
				}
				claims := tok.Claims.(jwt.MapClaims)
				if claims["user_id"] != "acc-1" {
					t.Fatalf("expected user_id acc-1, got %v", claims["user_id"])
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			tc.prepare(mocks)
			h := api.NewAuthHandler(mocks.Accounts, secret, tokenDur)

			var buf bytes.Buffer
			switch body := tc.body.(type) {
			case string:
				buf.WriteString(body)
			default:
				if err := json.NewEncoder(&buf).Encode(body); err != nil {
					t.Fatalf("encode body: %v", err)
				}
			}

			req := httptest.NewRequest(tc.method, tc.path, &buf)
			rec := httptest.NewRecorder()

			switch tc.path {
			case "/signup":
				h.Signup(rec, req)
			case "/signin":
				h.Signin(rec, req)
			}

			res := rec.Result()
			defer res.Body.Close()
			if res.StatusCode != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, res.StatusCode)
			}

			b, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			tc.checkBody(t, b)
		})
	}
}

func TestSignout(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewAuthHandler(mocks.Accounts, "testsecret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	rec := httptest.NewRecorder()
	h.Signout(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "signed out" {
		t.Fatalf("unexpected body: %v", body)
	}
}
