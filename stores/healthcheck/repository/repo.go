package repository

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

type impl struct {
	ledger domain.Ledger
	cache  provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	ledger domain.Ledger,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		ledger: ledger,
		cache:  cache,
	}
}

func (im *impl) PingLedger(context ctx.Ctx) (*domain.LedgerInfo, error) {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	info, err := im.ledger.LedgerInfo(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping ledger error")
		return nil, err
	}
	return info, nil
}

func (im *impl) PingCache(context ctx.Ctx) (int64, error) {
	if err := im.cache.Set(context, keys.CacheKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return 0, err
	}
	return im.cache.Len(), nil
}
