// Package userwallet manages user-wallet records: one user's balance
// inside a wallet. Creation seeds the balance; every later balance change
// goes through the ledger engine, never through this service.
package userwallet

import (
	"context"
	"errors"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	cachePrefix = "userwallet"
	cacheTTL    = 30 * time.Minute
)

// Cache is the subset of the cache service this package uses. The ledger
// engine invalidates the same pair keys after every balance mutation.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	GenerateKey(entityType, keyType string, value interface{}) string
}

// Service defines user-wallet lifecycle operations.
type Service interface {
	List(ctx context.Context) ([]models.UserWallet, error)
	Get(ctx context.Context, id uuid.UUID) (*models.UserWallet, error)
	GetByUserAndWallet(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserWallet, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.UserWallet, error)
	Create(ctx context.Context, userID, walletID uuid.UUID, initialBalance decimal.Decimal) (*models.UserWallet, error)
	// Update re-parents a membership to another user or wallet. The stored
	// balance is preserved; only the ledger engine may change it.
	Update(ctx context.Context, id uuid.UUID, userID, walletID uuid.UUID) (*models.UserWallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo    repositories.UserWalletRepository
	wallets repositories.WalletRepository
	cache   Cache
}

func NewService(repo repositories.UserWalletRepository, wallets repositories.WalletRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if wallets == nil {
		panic("wallet repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	return &service{repo: repo, wallets: wallets, cache: cache}
}

func (s *service) List(ctx context.Context) ([]models.UserWallet, error) {
	return s.repo.List()
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.UserWallet, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetByUserAndWallet(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error) {
	key := s.pairKey(userID, walletID)
	var cached models.UserWallet
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	uw, err := s.repo.GetByUserAndWallet(userID, walletID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetWithTTL(ctx, key, uw, cacheTTL); err != nil {
		logrus.WithError(err).Warn("failed to cache user wallet")
	}
	return uw, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserWallet, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.UserWallet, error) {
	return s.repo.ListByWallet(walletID)
}

func (s *service) Create(ctx context.Context, userID, walletID uuid.UUID, initialBalance decimal.Decimal) (*models.UserWallet, error) {
	if initialBalance.IsNegative() {
		return nil, errors.New("initial balance cannot be negative")
	}

	// The wallet must exist before a balance can live inside it.
	if _, err := s.wallets.GetByID(walletID); err != nil {
		return nil, err
	}

	// Duplicate pre-check; the unique (user, wallet) index is the backstop
	// for concurrent creates.
	if _, err := s.repo.GetByUserAndWallet(userID, walletID); err == nil {
		return nil, repositories.ErrDuplicateUserWallet
	} else if !errors.Is(err, repositories.ErrUserWalletNotFound) {
		return nil, err
	}

	uw := &models.UserWallet{
		UserID:   userID,
		WalletID: walletID,
		Balance:  initialBalance,
	}
	if err := s.repo.Create(uw); err != nil {
		return nil, err
	}
	return uw, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, userID, walletID uuid.UUID) (*models.UserWallet, error) {
	uw, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.wallets.GetByID(walletID); err != nil {
		return nil, err
	}

	oldKey := s.pairKey(uw.UserID, uw.WalletID)
	if userID != uw.UserID || walletID != uw.WalletID {
		if existing, err := s.repo.GetByUserAndWallet(userID, walletID); err == nil && existing.ID != id {
			return nil, repositories.ErrDuplicateUserWallet
		} else if err != nil && !errors.Is(err, repositories.ErrUserWalletNotFound) {
			return nil, err
		}
	}

	uw.UserID = userID
	uw.WalletID = walletID
	if err := s.repo.Update(uw); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, oldKey, s.pairKey(userID, walletID)); err != nil {
		logrus.WithError(err).Warn("failed to invalidate user wallet cache")
	}
	return uw, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uw, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, s.pairKey(uw.UserID, uw.WalletID)); err != nil {
		logrus.WithError(err).Warn("failed to invalidate user wallet cache")
	}
	return nil
}

func (s *service) pairKey(userID, walletID uuid.UUID) string {
	return s.cache.GenerateKey(cachePrefix, "pair", userID.String()+":"+walletID.String())
}
