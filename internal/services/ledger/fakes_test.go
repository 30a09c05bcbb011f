package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"walletcore/internal/models"
	"walletcore/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeLedgerRepo is an in-memory LedgerRepository. ExecuteInTransaction
// serializes units of work under a mutex and restores a snapshot on
// error, so tests can assert rollback the same way they would against
// the real database.
type fakeLedgerRepo struct {
	mu          sync.Mutex
	wallets     map[uuid.UUID]models.Wallet
	userWallets map[string]models.UserWallet
	txs         []models.Transaction
	history     []models.BalanceHistory

	lockErr          error
	createTxCalls    int
	failCreateTxCall int // 1-based call number to fail on; 0 disables
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		wallets:     make(map[uuid.UUID]models.Wallet),
		userWallets: make(map[string]models.UserWallet),
	}
}

func pairKey(userID, walletID uuid.UUID) string {
	return userID.String() + "/" + walletID.String()
}

func (f *fakeLedgerRepo) seedWallet(name string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := models.Wallet{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.wallets[w.ID] = w
	return w.ID
}

func (f *fakeLedgerRepo) seedUserWallet(userID, walletID uuid.UUID, balance string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userWallets[pairKey(userID, walletID)] = models.UserWallet{
		ID:       uuid.New(),
		UserID:   userID,
		WalletID: walletID,
		Balance:  decimal.RequireFromString(balance),
	}
}

func (f *fakeLedgerRepo) balanceOf(userID, walletID uuid.UUID) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userWallets[pairKey(userID, walletID)].Balance
}

func (f *fakeLedgerRepo) transactionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.txs)
}

func (f *fakeLedgerRepo) historyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.history)
}

func (f *fakeLedgerRepo) GetUserWalletLocked(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).GetUserWalletLocked(ctx, userID, walletID)
}

func (f *fakeLedgerRepo) SaveUserWallet(uw *models.UserWallet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).SaveUserWallet(uw)
}

func (f *fakeLedgerRepo) CreateBalanceHistory(h *models.BalanceHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).CreateBalanceHistory(h)
}

func (f *fakeLedgerRepo) CreateTransaction(tx *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).CreateTransaction(tx)
}

func (f *fakeLedgerRepo) SaveTransaction(tx *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).SaveTransaction(tx)
}

func (f *fakeLedgerRepo) GetTransactionByID(id uuid.UUID) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).GetTransactionByID(id)
}

func (f *fakeLedgerRepo) ListTransactions(limit, offset int) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).ListTransactions(limit, offset)
}

func (f *fakeLedgerRepo) GetWalletByID(id uuid.UUID) (*models.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (&fakeTxRepo{f}).GetWalletByID(id)
}

func (f *fakeLedgerRepo) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapUW := make(map[string]models.UserWallet, len(f.userWallets))
	for k, v := range f.userWallets {
		snapUW[k] = v
	}
	snapTxs := append([]models.Transaction(nil), f.txs...)
	snapHist := append([]models.BalanceHistory(nil), f.history...)

	if err := fn(&fakeTxRepo{f}); err != nil {
		f.userWallets = snapUW
		f.txs = snapTxs
		f.history = snapHist
		return err
	}
	return nil
}

// fakeTxRepo is the transaction-scoped view. Callers hold the repo mutex.
type fakeTxRepo struct {
	r *fakeLedgerRepo
}

func (t *fakeTxRepo) GetUserWalletLocked(ctx context.Context, userID, walletID uuid.UUID) (*models.UserWallet, error) {
	if t.r.lockErr != nil {
		return nil, t.r.lockErr
	}
	uw, ok := t.r.userWallets[pairKey(userID, walletID)]
	if !ok {
		return nil, repositories.ErrUserWalletNotFound
	}
	return &uw, nil
}

func (t *fakeTxRepo) SaveUserWallet(uw *models.UserWallet) error {
	t.r.userWallets[pairKey(uw.UserID, uw.WalletID)] = *uw
	return nil
}

func (t *fakeTxRepo) CreateBalanceHistory(h *models.BalanceHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	h.RecordedAt = time.Now()
	t.r.history = append(t.r.history, *h)
	return nil
}

func (t *fakeTxRepo) CreateTransaction(tx *models.Transaction) error {
	t.r.createTxCalls++
	if t.r.failCreateTxCall > 0 && t.r.createTxCalls == t.r.failCreateTxCall {
		return fmt.Errorf("create transaction: injected failure")
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	tx.CreatedAt = time.Now()
	t.r.txs = append(t.r.txs, *tx)
	return nil
}

func (t *fakeTxRepo) SaveTransaction(tx *models.Transaction) error {
	for i := range t.r.txs {
		if t.r.txs[i].ID == tx.ID {
			t.r.txs[i] = *tx
			return nil
		}
	}
	return repositories.ErrTransactionNotFound
}

func (t *fakeTxRepo) GetTransactionByID(id uuid.UUID) (*models.Transaction, error) {
	for i := range t.r.txs {
		if t.r.txs[i].ID == id {
			tx := t.r.txs[i]
			return &tx, nil
		}
	}
	return nil, repositories.ErrTransactionNotFound
}

func (t *fakeTxRepo) ListTransactions(limit, offset int) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(t.r.txs) - 1; i >= 0; i-- {
		out = append(out, t.r.txs[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (t *fakeTxRepo) GetWalletByID(id uuid.UUID) (*models.Wallet, error) {
	w, ok := t.r.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	return &w, nil
}

func (t *fakeTxRepo) ExecuteInTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	return fn(t)
}

// fakeCache is an in-memory Cache with the same JSON round-trip and key
// format as the Redis-backed service.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}
