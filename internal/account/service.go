package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, acc *Account) error
	Get(ctx context.Context, id uuid.UUID) (*Account, error)
	ListByUser(ctx context.Context, userID string) ([]*Account, error)
	Update(ctx context.Context, acc *Account) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID   string
	Name     string
	Kind     string
	Currency string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	kind, err := ParseKind(params.Kind)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("account name must not be blank")
	}

	acc := &Account{
		UserID:   strings.TrimSpace(params.UserID),
		Name:     name,
		Kind:     kind,
		Currency: strings.ToUpper(strings.TrimSpace(params.Currency)),
		Balance:  decimal.Zero,
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Account, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Credit applies a deposit-side balance change and persists it.
func (s *Service) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Account, error) {
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	acc.Credit(amount)

	if err := s.repo.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return acc, nil
}

// Debit applies a withdrawal-side balance change and persists it.
func (s *Service) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Account, error) {
	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := acc.Debit(amount); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return acc, nil
}
