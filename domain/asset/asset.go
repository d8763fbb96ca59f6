package asset

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
)

type Rarity uint8

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RaritySuperRare
)

var rarityLabels = map[Rarity]string{
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RaritySuperRare: "Super Rare",
}

func (r Rarity) IsValid() bool {
	return r >= RarityCommon && r <= RaritySuperRare
}

func (r Rarity) String() string {
	if l, ok := rarityLabels[r]; ok {
		return l
	}
	return "Unknown"
}

// Auction is present on an asset while the ledger reports is_auction
type Auction struct {
	StartingBid   currency.Amount `json:"startingBid"`
	HighestBid    currency.Amount `json:"highestBid"`
	HighestBidder domain.Address  `json:"highestBidder"`
	// EndTime is ledger time, epoch seconds
	EndTime int64 `json:"endTime"`
}

func (a *Auction) IsActive(now time.Time) bool {
	return now.Unix() < a.EndTime
}

// IsExpired is strict: the sweeper only finalizes once end < now
func (a *Auction) IsExpired(now time.Time) bool {
	return a.EndTime < now.Unix()
}

// MinimumBid is max(startingBid, highestBid + increment)
func (a *Auction) MinimumBid() currency.Amount {
	return currency.Max(a.StartingBid, a.HighestBid.Add(currency.MinBidIncrement))
}

type Asset struct {
	Id          domain.AssetId  `json:"id"`
	Owner       domain.Address  `json:"owner"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Uri         string          `json:"uri"`
	Rarity      Rarity          `json:"rarity"`
	Price       currency.Amount `json:"price"`
	ForSale     bool            `json:"forSale"`
	Auction     *Auction        `json:"auction,omitempty"`
}

func (a *Asset) IsAuction() bool {
	return a.Auction != nil
}

// IsListed is the global market visibility rule
func (a *Asset) IsListed(now time.Time) bool {
	return a.ForSale || (a.IsAuction() && a.Auction.IsActive(now))
}

// DisplayPrice is the highest bid for auctions, else the listing price
func (a *Asset) DisplayPrice() currency.Amount {
	if a.IsAuction() {
		return a.Auction.HighestBid
	}
	return a.Price
}

// Gift is the optional annotation left by transfer_nft_with_message
type Gift struct {
	IsGift    bool           `json:"isGift"`
	Message   string         `json:"message"`
	From      domain.Address `json:"from"`
	Timestamp int64          `json:"timestamp"`
}

// Repo reads assets from the ledger. Batch reads drop records that fail to
// decode and report how many were dropped.
type Repo interface {
	ListMarket(c ctx.Ctx) ([]Asset, int, error)
	ListOwnedIds(c ctx.Ctx, owner domain.Address) ([]domain.AssetId, error)
	ListOwned(c ctx.Ctx, owner domain.Address) ([]Asset, int, error)
	Get(c ctx.Ctx, id domain.AssetId) (*Asset, error)
	GetGift(c ctx.Ctx, id domain.AssetId) (*Gift, error)
}
