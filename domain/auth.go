package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketclient/base/ctx"
)

type JwtCustomClaims struct {
	Address Address `json:"address"`
	jwt.StandardClaims
}

// AuthUsecase guards the write API. Tokens are only issued for the wallet
// account the daemon signs with.
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
