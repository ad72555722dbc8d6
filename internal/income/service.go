package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, in *Income) error
	Get(ctx context.Context, id uuid.UUID) (*Income, error)
	ListByUser(ctx context.Context, userID string) ([]*Income, error)
	SumByCategory(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
	SumByMonth(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Income, error) {
	category := strings.TrimSpace(params.Category)
	if category == "" {
		return nil, fmt.Errorf("income category must not be blank")
	}

	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("income amount must be greater than zero, got %s", params.Amount)
	}

	in := &Income{
		UserID:      strings.TrimSpace(params.UserID),
		Category:    category,
		Amount:      params.Amount,
		Description: strings.TrimSpace(params.Description),
		Date:        params.Date,
	}

	if err := s.repo.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("creating income: %w", err)
	}

	return in, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Income, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Income, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) SumByCategory(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	return s.repo.SumByCategory(ctx, userID)
}

func (s *Service) SumByMonth(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	return s.repo.SumByMonth(ctx, userID)
}
