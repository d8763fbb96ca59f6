package marketplace

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
)

// Config is the admin-managed state of the marketplace. Owner is the
// marketplace account itself.
type Config struct {
	Owner      domain.Address   `json:"owner"`
	MintingFee currency.Amount  `json:"mintingFee"`
	Whitelist  []domain.Address `json:"whitelist"`
}

func (c *Config) IsOwner(a domain.Address) bool {
	return c.Owner.Equals(a)
}

type Stats struct {
	Volume       currency.Amount `json:"volume"`
	Sales        uint64          `json:"sales"`
	Buyers       uint64          `json:"buyers"`
	Sellers      uint64          `json:"sellers"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

type RarityVolume struct {
	Rarity asset.Rarity    `json:"rarity"`
	Label  string          `json:"label"`
	Volume currency.Amount `json:"volume"`
}

type Repo interface {
	GetMintingFee(c ctx.Ctx) (currency.Amount, error)
	GetWhitelist(c ctx.Ctx) ([]domain.Address, error)
	IsWhitelisted(c ctx.Ctx, address domain.Address) (bool, error)
	GetStats(c ctx.Ctx) (*Stats, error)
	GetRarityVolume(c ctx.Ctx, rarity asset.Rarity) (currency.Amount, error)
}

type Usecase interface {
	Owner() domain.Address
	GetConfig(c ctx.Ctx) (*Config, error)
	IsWhitelisted(c ctx.Ctx, address domain.Address) (bool, error)
	// EffectiveMintingFee is what minter pays for mint_nft
	EffectiveMintingFee(c ctx.Ctx, minter domain.Address) (currency.Amount, error)
	GetStats(c ctx.Ctx) (*Stats, error)
	GetRarityVolumes(c ctx.Ctx) ([]RarityVolume, error)
}
