package healthcheck

import (
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type Status struct {
	Ledger       *domain.LedgerInfo `json:"ledger"`
	CacheEntries int64              `json:"cacheEntries"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingLedger(context ctx.Ctx) (*domain.LedgerInfo, error)
	PingCache(context ctx.Ctx) (int64, error)
}
