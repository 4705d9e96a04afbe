package mock

import (
	"context"

	"github.com/dev-devfero/talaash/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Accounts *AccountRepo
	Postings *PostingRepo
	CVs      *CVRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Accounts: &AccountRepo{},
		Postings: &PostingRepo{},
		CVs:      &CVRepo{},
	}
}

type AccountRepo struct {
	Stored    *models.Account
	CreateErr error
}

func (m *AccountRepo) CreateAccount(ctx context.Context, a *models.Account) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = a
	return nil
}

func (m *AccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

// PostingRepo is an in-memory PostingRepo. MaxDeadline is computed over the
// stored records; YYYY-MM-DD strings compare lexicographically in date order.
type PostingRepo struct {
	Stored    []models.JobPosting
	CreateErr error
	ListErr   error
	MaxErr    error
}

func (m *PostingRepo) CreatePosting(ctx context.Context, p *models.JobPosting) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Stored = append(m.Stored, *p)
	return nil
}

func (m *PostingRepo) ListPostings(ctx context.Context) ([]models.JobPosting, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.JobPosting, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

func (m *PostingRepo) MaxDeadline(ctx context.Context) (string, error) {
	if m.MaxErr != nil {
		return "", m.MaxErr
	}
	max := ""
	for _, p := range m.Stored {
		if p.Deadline > max {
			max = p.Deadline
		}
	}
	return max, nil
}

type CVRepo struct {
	Stored    []models.CVRecord
	CreateErr error
}

func (m *CVRepo) CreateCV(ctx context.Context, c *models.CVRecord) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if c.Created == 0 {
		c.Created = int64(len(m.Stored) + 1)
	}
	m.Stored = append(m.Stored, *c)
	return nil
}

func (m *CVRepo) LatestByUser(ctx context.Context, userID string) (*models.CVRecord, error) {
	var latest *models.CVRecord
	for i := range m.Stored {
		c := &m.Stored[i]
		if c.UserID != userID {
			continue
		}
		if latest == nil || c.Created >= latest.Created {
			latest = c
		}
	}
	return latest, nil
}
