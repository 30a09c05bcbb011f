package ledger

// Cache keys and defaults.
const (
	TransactionCachePrefix = "transaction"
	UserWalletCachePrefix  = "userwallet"

	DefaultListLimit = 50
	MaxListLimit     = 200
)
