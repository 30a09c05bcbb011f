package models

import "github.com/golang-jwt/jwt/v5"

// API permissions carried in JWT claims.
const (
	PermissionWalletRead       = "wallet:read"
	PermissionWalletWrite      = "wallet:write"
	PermissionTransactionRead  = "transaction:read"
	PermissionTransactionWrite = "transaction:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission.
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
