package api

import (
	"net/http"

	"github.com/dev-devfero/talaash/internal/cache"
	"github.com/dev-devfero/talaash/internal/config"
	"github.com/dev-devfero/talaash/internal/db"
	"github.com/dev-devfero/talaash/internal/listing"
	"github.com/dev-devfero/talaash/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB, listingCache *cache.Cache) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and services
	repo := sqlite.New(db)
	svc := listing.NewService(repo, listingCache, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	jobsHandler := NewJobsHandler(svc)
	cvHandler := NewCVHandler(repo, cfg.MaxCVBytes)

	auth := JWTAuthMiddlewareWithSecret(cfg.JWTSecret)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/v1/auth/signin", authHandler.Signin).Methods("POST")

	// CV endpoints
	r.HandleFunc("/api/v1/cv", cvHandler.SaveCV).Methods("POST")
	r.HandleFunc("/api/v1/cv/latest", cvHandler.LatestCV).Methods("GET")

	// Job endpoints; only creation needs a bearer credential
	r.HandleFunc("/api/v1/job/get-job", jobsHandler.GetJobs).Methods("GET")
	r.HandleFunc("/api/v1/job/max-deadline", jobsHandler.MaxDeadline).Methods("GET")
	r.Handle("/api/v1/job/create-job", auth(http.HandlerFunc(jobsHandler.CreateJob))).Methods("POST")

	r.Handle("/api/v1/auth/signout", auth(http.HandlerFunc(authHandler.Signout))).Methods("POST")

	return r
}
