package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/domain/marketplace"
	"github.com/x-xyz/marketclient/service/cache"
)

// StatsTtl is how long analytics reads stay cached
const StatsTtl = 30 * time.Second

type MarketplaceUseCaseCfg struct {
	Repo  marketplace.Repo
	Owner domain.Address
	// Cache holds analytics reads, optional
	Cache cache.Service
}

type impl struct {
	repo  marketplace.Repo
	owner domain.Address
	cache cache.Service
}

func NewMarketplaceUseCase(cfg *MarketplaceUseCaseCfg) marketplace.Usecase {
	return &impl{
		repo:  cfg.Repo,
		owner: cfg.Owner,
		cache: cfg.Cache,
	}
}

func (im *impl) Owner() domain.Address {
	return im.owner
}

func (im *impl) GetConfig(c ctx.Ctx) (*marketplace.Config, error) {
	fee, err := im.repo.GetMintingFee(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetMintingFee failed")
		return nil, err
	}
	whitelist, err := im.repo.GetWhitelist(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetWhitelist failed")
		return nil, err
	}
	return &marketplace.Config{
		Owner:      im.owner,
		MintingFee: fee,
		Whitelist:  whitelist,
	}, nil
}

func (im *impl) IsWhitelisted(c ctx.Ctx, address domain.Address) (bool, error) {
	ok, err := im.repo.IsWhitelisted(c, address)
	if err != nil {
		c.WithFields(log.Fields{"address": address, "err": err}).Error("repo.IsWhitelisted failed")
		return false, err
	}
	return ok, nil
}

// EffectiveMintingFee is zero for the owner and whitelisted minters
func (im *impl) EffectiveMintingFee(c ctx.Ctx, minter domain.Address) (currency.Amount, error) {
	if im.owner.Equals(minter) {
		return currency.Zero, nil
	}
	ok, err := im.IsWhitelisted(c, minter)
	if err != nil {
		return currency.Zero, err
	}
	if ok {
		return currency.Zero, nil
	}
	fee, err := im.repo.GetMintingFee(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetMintingFee failed")
		return currency.Zero, err
	}
	return fee, nil
}

func (im *impl) GetStats(c ctx.Ctx) (*marketplace.Stats, error) {
	if im.cache == nil {
		return im.getStats(c)
	}
	stats := marketplace.Stats{}
	if err := im.cache.GetByFunc(c, keys.CacheKey("stats"), &stats, func() (interface{}, error) {
		return im.getStats(c)
	}); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (im *impl) getStats(c ctx.Ctx) (*marketplace.Stats, error) {
	stats, err := im.repo.GetStats(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetStats failed")
		return nil, err
	}
	stats.AveragePrice = decimal.Zero
	if stats.Sales > 0 {
		stats.AveragePrice = stats.Volume.Div(stats.Sales)
	}
	return stats, nil
}

var rarities = []asset.Rarity{asset.RarityCommon, asset.RarityUncommon, asset.RarityRare, asset.RaritySuperRare}

func (im *impl) GetRarityVolumes(c ctx.Ctx) ([]marketplace.RarityVolume, error) {
	if im.cache == nil {
		return im.getRarityVolumes(c)
	}
	res := []marketplace.RarityVolume{}
	if err := im.cache.GetByFunc(c, keys.CacheKey("rarity"), &res, func() (interface{}, error) {
		vols, err := im.getRarityVolumes(c)
		return &vols, err
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) getRarityVolumes(c ctx.Ctx) ([]marketplace.RarityVolume, error) {
	res := make([]marketplace.RarityVolume, 0, len(rarities))
	for _, r := range rarities {
		vol, err := im.repo.GetRarityVolume(c, r)
		if err != nil {
			c.WithFields(log.Fields{"rarity": r, "err": err}).Error("repo.GetRarityVolume failed")
			return nil, err
		}
		res = append(res, marketplace.RarityVolume{Rarity: r, Label: r.String(), Volume: vol})
	}
	return res, nil
}
