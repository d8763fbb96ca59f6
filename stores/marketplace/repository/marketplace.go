package repository

import (
	"encoding/json"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/movecodec"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/marketplace"
)

type impl struct {
	ledger domain.Ledger
	market domain.Address
}

func NewRepo(ledger domain.Ledger, market domain.Address) marketplace.Repo {
	return &impl{ledger: ledger, market: market}
}

func (im *impl) view(c ctx.Ctx, name string, args ...interface{}) ([]json.RawMessage, error) {
	vals, err := im.ledger.View(c, domain.ViewRequest{
		Function:      domain.MarketFunction(im.market, name),
		TypeArguments: []string{},
		Arguments:     append([]interface{}{im.market.String()}, args...),
	})
	if err != nil {
		c.WithFields(log.Fields{"function": name, "err": err}).Error("ledger.View failed")
		return nil, err
	}
	if err := movecodec.Record(name, vals, 1); err != nil {
		return nil, err
	}
	return vals, nil
}

func (im *impl) GetMintingFee(c ctx.Ctx) (currency.Amount, error) {
	vals, err := im.view(c, "get_minting_fee")
	if err != nil {
		return currency.Zero, err
	}
	return movecodec.Amount("minting_fee", vals[0])
}

func (im *impl) GetWhitelist(c ctx.Ctx) ([]domain.Address, error) {
	vals, err := im.view(c, "get_whitelisted_addresses")
	if err != nil {
		return nil, err
	}
	return movecodec.AddressVector("whitelist", vals[0])
}

func (im *impl) IsWhitelisted(c ctx.Ctx, address domain.Address) (bool, error) {
	vals, err := im.view(c, "is_whitelisted", address.String())
	if err != nil {
		return false, err
	}
	return movecodec.Bool("is_whitelisted", vals[0])
}

// GetStats reads get_market_stats: [volume, sales, buyers, sellers]
func (im *impl) GetStats(c ctx.Ctx) (*marketplace.Stats, error) {
	vals, err := im.view(c, "get_market_stats")
	if err != nil {
		return nil, err
	}
	if err := movecodec.Record("get_market_stats", vals, 4); err != nil {
		return nil, err
	}
	s := &marketplace.Stats{}
	if s.Volume, err = movecodec.Amount("volume", vals[0]); err != nil {
		return nil, err
	}
	if s.Sales, err = movecodec.U64("sales", vals[1]); err != nil {
		return nil, err
	}
	if s.Buyers, err = movecodec.U64("buyers", vals[2]); err != nil {
		return nil, err
	}
	if s.Sellers, err = movecodec.U64("sellers", vals[3]); err != nil {
		return nil, err
	}
	return s, nil
}

func (im *impl) GetRarityVolume(c ctx.Ctx, rarity asset.Rarity) (currency.Amount, error) {
	vals, err := im.view(c, "get_rarity_volume", uint8(rarity))
	if err != nil {
		return currency.Zero, err
	}
	return movecodec.Amount("rarity_volume", vals[0])
}
