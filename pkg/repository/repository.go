package repository

import (
	"context"

	"github.com/dev-devfero/talaash/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type AccountRepo interface {
	CreateAccount(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

type PostingRepo interface {
	CreatePosting(ctx context.Context, p *models.JobPosting) error
	ListPostings(ctx context.Context) ([]models.JobPosting, error)
	// MaxDeadline returns the maximum deadline (YYYY-MM-DD) across all
	// postings, or "" when the store is empty.
	MaxDeadline(ctx context.Context) (string, error)
}

type CVRepo interface {
	CreateCV(ctx context.Context, c *models.CVRecord) error
	LatestByUser(ctx context.Context, userID string) (*models.CVRecord, error)
}
