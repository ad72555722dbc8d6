package transaction

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Save(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id ID) (*Transaction, error)
	FindByUser(ctx context.Context, userID string) ([]*Transaction, error)
	FindByAccount(ctx context.Context, accountID string) ([]*Transaction, error)
	Delete(ctx context.Context, id ID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams is the raw creation request. The service assembles the value
// objects and lets the aggregate constructor enforce the cross-field rules.
type CreateParams struct {
	UserID               string
	Type                 string
	Status               string
	Amount               string
	Currency             string
	Description          string
	Date                 string // YYYY-MM-DD
	SourceAccountID      string
	DestinationAccountID string
	ExpenseID            string
	IncomeID             string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	txType, err := ParseType(params.Type)
	if err != nil {
		return nil, err
	}

	// New movements start out pending unless the caller says otherwise.
	status := StatusPending

	if params.Status != "" {
		status, err = ParseStatus(params.Status)
		if err != nil {
			return nil, err
		}
	}

	amount, err := NewAmountFromString(params.Amount)
	if err != nil {
		return nil, err
	}

	description, err := NewDescription(params.Description)
	if err != nil {
		return nil, err
	}

	date, err := ParseDate(params.Date)
	if err != nil {
		return nil, err
	}

	tx, err := New(Params{
		ID:                   NewID(),
		UserID:               params.UserID,
		Type:                 txType,
		Status:               status,
		Amount:               amount,
		Currency:             params.Currency,
		Description:          description,
		Date:                 date,
		SourceAccountID:      params.SourceAccountID,
		DestinationAccountID: params.DestinationAccountID,
		ExpenseID:            params.ExpenseID,
		IncomeID:             params.IncomeID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id ID) (*Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]*Transaction, error) {
	return s.repo.FindByAccount(ctx, accountID)
}

func (s *Service) Complete(ctx context.Context, id ID) (*Transaction, error) {
	return s.mutate(ctx, id, (*Transaction).Complete)
}

func (s *Service) Cancel(ctx context.Context, id ID) (*Transaction, error) {
	return s.mutate(ctx, id, (*Transaction).Cancel)
}

func (s *Service) Fail(ctx context.Context, id ID) (*Transaction, error) {
	return s.mutate(ctx, id, (*Transaction).MarkFailed)
}

func (s *Service) UpdateStatus(ctx context.Context, id ID, status string) (*Transaction, error) {
	next, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(tx *Transaction) error {
		return tx.UpdateStatus(next)
	})
}

func (s *Service) UpdateDescription(ctx context.Context, id ID, description string) (*Transaction, error) {
	d, err := NewDescription(description)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(tx *Transaction) error {
		return tx.UpdateDescription(d)
	})
}

func (s *Service) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}

// mutate loads the transaction, applies fn and persists the result.
func (s *Service) mutate(ctx context.Context, id ID, fn func(*Transaction) error) (*Transaction, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(tx); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	return tx, nil
}
