// Package listing owns job-posting validation and the deadline
// high-water-mark invariant: a new posting's deadline must never be earlier
// than the maximum deadline already in the store. The rule lives here and
// only here; HTTP clients pre-check through MaxDeadline instead of
// re-deriving the comparison.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/dev-devfero/talaash/internal/cache"
	"github.com/dev-devfero/talaash/pkg/models"
	"github.com/dev-devfero/talaash/pkg/repository"
	"github.com/google/uuid"
)

// DateLayout is the calendar-day wire format for deadlines.
const DateLayout = "2006-01-02"

var workTypes = map[string]bool{
	"full-time":  true,
	"part-time":  true,
	"internship": true,
	"contract":   true,
	"remote":     true,
}

// DefaultWorkType is used when a candidate omits workType.
const DefaultWorkType = "full-time"

// Input is a candidate posting as submitted by a client. All fields are
// plain text; Deadline must be YYYY-MM-DD.
type Input struct {
	Company      string `json:"company"`
	Position     string `json:"position"`
	Description  string `json:"description"`
	WorkLocation string `json:"workLocation"`
	Salary       string `json:"salary"`
	WorkType     string `json:"workType"`
	PosterEmail  string `json:"posterEmail"`
	Deadline     string `json:"deadline"`
}

// Identity is the verified caller identity, taken from the bearer token.
type Identity struct {
	UserID string
	Email  string
}

// Service validates and stores job postings.
type Service struct {
	postings repository.PostingRepo
	cache    *cache.Cache
	logger   *slog.Logger

	// now is replaceable in tests; validation normalizes it to midnight UTC.
	now func() time.Time
}

// NewService creates a Service. cache may be nil to disable listing caching;
// logger may be nil.
func NewService(postings repository.PostingRepo, c *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{postings: postings, cache: c, logger: logger, now: time.Now}
}

// SetNowFunc overrides the clock. Intended for tests.
func (s *Service) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// Submit validates a candidate posting and persists it. Validation steps run
// in order and stop at the first failure; nothing is written on failure.
// The max-deadline read and the insert are not atomic: two concurrent
// submissions can both pass step 5 against the same prevailing maximum. At
// this contention level that race is accepted rather than serialized.
func (s *Service) Submit(ctx context.Context, in Input, identity *Identity) (*models.JobPosting, error) {
	if identity == nil || identity.UserID == "" {
		return nil, ErrUnauthenticated
	}

	required := []struct {
		name, value string
	}{
		{"company", in.Company},
		{"position", in.Position},
		{"description", in.Description},
		{"workLocation", in.WorkLocation},
		{"salary", in.Salary},
		{"posterEmail", in.PosterEmail},
		{"deadline", in.Deadline},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &ValidationError{Code: CodeMissingField, Field: f.name}
		}
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(in.PosterEmail)); err != nil {
		return nil, &ValidationError{Code: CodeInvalidEmail}
	}

	deadline, err := time.ParseInLocation(DateLayout, strings.TrimSpace(in.Deadline), time.UTC)
	if err != nil {
		return nil, &ValidationError{Code: CodeInvalidDate}
	}

	today := midnight(s.now())
	if deadline.Before(today) {
		return nil, &ValidationError{Code: CodeDeadlineInPast}
	}

	max, err := s.maxDeadlineRaw(ctx)
	if err != nil {
		return nil, err
	}
	if max != "" {
		maxDay, err := time.ParseInLocation(DateLayout, max, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: stored deadline %q: %v", ErrStoreUnavailable, max, err)
		}
		if deadline.Before(maxDay) {
			return nil, &ValidationError{Code: CodeDeadlineBeforeLatest, Max: max}
		}
	}

	workType := strings.TrimSpace(in.WorkType)
	if workType == "" {
		workType = DefaultWorkType
	} else if !workTypes[workType] {
		return nil, &ValidationError{Code: CodeInvalidWorkType}
	}

	p := &models.JobPosting{
		ID:           uuid.NewString(),
		Company:      in.Company,
		Position:     in.Position,
		Description:  in.Description,
		WorkLocation: in.WorkLocation,
		Salary:       in.Salary,
		WorkType:     workType,
		PosterEmail:  in.PosterEmail,
		Deadline:     deadline.Format(DateLayout),
		CreatedBy:    identity.UserID,
		Created:      s.now().UTC().UnixMilli(),
	}

	if err := s.postings.CreatePosting(ctx, p); err != nil {
		s.logger.Error("create posting failed", slog.Any("err", err))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("listing cache invalidation failed", slog.Any("err", err))
		}
	}

	return p, nil
}

// MaxDeadline returns the maximum deadline across all stored postings, or
// nil when the store is empty. Submit uses the same store read, so callers
// pre-checking through this method see the value Submit will enforce.
func (s *Service) MaxDeadline(ctx context.Context) (*time.Time, error) {
	max, err := s.maxDeadlineRaw(ctx)
	if err != nil {
		return nil, err
	}
	if max == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(DateLayout, max, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: stored deadline %q: %v", ErrStoreUnavailable, max, err)
	}

	return &day, nil
}

// List returns all postings, newest first, through the cache when one is
// configured.
func (s *Service) List(ctx context.Context) ([]models.JobPosting, error) {
	if s.cache != nil {
		if jobs, ok := s.cache.Get(ctx); ok {
			return jobs, nil
		}
	}

	jobs, err := s.postings.ListPostings(ctx)
	if err != nil {
		s.logger.Error("list postings failed", slog.Any("err", err))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, jobs); err != nil {
			s.logger.Warn("listing cache set failed", slog.Any("err", err))
		}
	}

	return jobs, nil
}

func (s *Service) maxDeadlineRaw(ctx context.Context) (string, error) {
	max, err := s.postings.MaxDeadline(ctx)
	if err != nil {
		s.logger.Error("max deadline query failed", slog.Any("err", err))
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return max, nil
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
