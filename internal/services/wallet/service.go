// Package wallet manages wallet records: named pools of money that
// user-wallet balances live inside. Balance semantics live in the ledger
// package; this service only handles the wallet lifecycle.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
)

// Service defines wallet lifecycle operations.
type Service interface {
	List(ctx context.Context) ([]models.Wallet, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
	Create(ctx context.Context, name string) (*models.Wallet, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*models.Wallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repositories.WalletRepository
}

func NewService(repo repositories.WalletRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]models.Wallet, error) {
	return s.repo.List()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	return s.repo.GetByID(id)
}

func (s *service) Create(ctx context.Context, name string) (*models.Wallet, error) {
	if err := s.checkNameAvailable(name); err != nil {
		return nil, err
	}

	wallet := &models.Wallet{Name: name}
	if err := s.repo.Create(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) Rename(ctx context.Context, id uuid.UUID, name string) (*models.Wallet, error) {
	wallet, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if wallet.Name != name {
		if err := s.checkNameAvailable(name); err != nil {
			return nil, err
		}
	}

	wallet.Name = name
	if err := s.repo.Update(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(id)
}

// checkNameAvailable enforces global name uniqueness ahead of the unique
// index, so callers get a conflict instead of a bare constraint error.
func (s *service) checkNameAvailable(name string) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", repositories.ErrDuplicateWallet, name)
	}
	return nil
}
