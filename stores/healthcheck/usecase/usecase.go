package usecase

import (
	"github.com/x-xyz/marketclient/base/ctx"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	info, err := im.repo.PingLedger(context)
	if err != nil {
		return nil, err
	}
	entries, err := im.repo.PingCache(context)
	if err != nil {
		return nil, err
	}
	return &hcdomain.Status{Ledger: info, CacheEntries: entries}, nil
}
