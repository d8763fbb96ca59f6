package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

const defaultTokenTtl = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret string
	// Account is the only address a token is issued for
	Account domain.Address
	Ttl     time.Duration
	Clock   domain.Clock
}

type impl struct {
	jwtSecret []byte
	account   domain.Address
	ttl       time.Duration
	clock     domain.Clock
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		account:   cfg.Account,
		ttl:       cfg.Ttl,
		clock:     cfg.Clock,
	}
	if im.ttl <= 0 {
		im.ttl = defaultTokenTtl
	}
	if im.clock == nil {
		im.clock = domain.SystemClock
	}
	return im
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !im.account.Equals(address) {
		return "", domain.ErrInvalidAddress
	}

	claims := domain.JwtCustomClaims{
		Address: address.Canonical(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: im.clock.Now().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			if !im.account.Equals(claims.Address) {
				return "", domain.ErrInvalidAddress
			}
			return claims.Address, nil
		}
	}

	if err == nil {
		err = domain.ErrBadParamInput
	}
	return "", err
}
