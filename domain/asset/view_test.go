package asset

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
)

var now = time.Unix(1_700_000_000, 0)

func apt(display string) currency.Amount {
	a, err := currency.ParseDisplay(display)
	if err != nil {
		panic(err)
	}
	return a
}

func listing(id uint64, name string, price string, rarity Rarity) Asset {
	return Asset{Id: domain.AssetId(id), Name: name, Price: apt(price), ForSale: true, Rarity: rarity, Owner: "0xa11ce"}
}

func auction(id uint64, name string, highest string, end int64) Asset {
	return Asset{
		Id:     domain.AssetId(id),
		Name:   name,
		Rarity: RarityRare,
		Owner:  "0xb0b",
		Auction: &Auction{
			StartingBid: apt("1"),
			HighestBid:  apt(highest),
			EndTime:     end,
		},
	}
}

func ids(p Page) []domain.AssetId {
	out := []domain.AssetId{}
	for _, a := range p.Items {
		out = append(out, a.Id)
	}
	return out
}

func opts(t *testing.T, fns ...ViewOptionsFunc) ViewOptions {
	o, err := GetViewOptions(fns...)
	require.NoError(t, err)
	return o
}

func TestMarketVisibility(t *testing.T) {
	req := require.New(t)
	assets := []Asset{
		listing(1, "Listed", "1", RarityCommon),
		{Id: 2, Name: "Unlisted", Price: apt("1")},
		auction(3, "Live", "2", now.Unix()+60),
		auction(4, "Ended", "2", now.Unix()),
		auction(5, "Long ended", "2", now.Unix()-100),
	}
	p := MarketView(assets, now, opts(t, WithSort(SortOldest)))
	req.Equal([]domain.AssetId{1, 3}, ids(p))
	req.Equal(2, p.Total)
}

func TestMarketVisibilityProperty(t *testing.T) {
	req := require.New(t)
	r := rand.New(rand.NewSource(7))
	assets := []Asset{}
	for i := 0; i < 200; i++ {
		a := Asset{Id: domain.AssetId(i), ForSale: r.Intn(2) == 0, Price: currency.FromUint64(uint64(r.Intn(1000)))}
		if r.Intn(2) == 0 {
			a.Auction = &Auction{EndTime: now.Unix() + int64(r.Intn(20)-10)}
		}
		assets = append(assets, a)
	}
	p := MarketView(assets, now, opts(t, WithPage(1, 1000)))
	for _, a := range p.Items {
		visible := a.ForSale || (a.Auction != nil && now.Unix() < a.Auction.EndTime)
		req.True(visible, "asset %d should be hidden", a.Id)
	}
}

func TestFilters(t *testing.T) {
	req := require.New(t)
	assets := []Asset{
		listing(1, "Red Fox", "0.5", RarityCommon),
		listing(2, "Blue Fox", "3", RaritySuperRare),
		listing(12, "Owl", "4", RarityCommon),
		auction(3, "Fox Auction", "2.5", now.Unix()+60),
	}

	p := MarketView(assets, now, opts(t, WithRarity(RarityCommon), WithSort(SortOldest)))
	req.Equal([]domain.AssetId{1, 12}, ids(p))

	min, max := apt("1"), apt("3")
	p = MarketView(assets, now, opts(t, WithPriceRange(&min, &max), WithSort(SortOldest)))
	req.Equal([]domain.AssetId{2, 3}, ids(p), "auction filtered on highest bid, bounds inclusive")

	p = MarketView(assets, now, opts(t, WithStatus(StatusAuction)))
	req.Equal([]domain.AssetId{3}, ids(p))

	p = MarketView(assets, now, opts(t, WithStatus(StatusBuyNow), WithSort(SortOldest)))
	req.Equal([]domain.AssetId{1, 2, 12}, ids(p))

	p = MarketView(assets, now, opts(t, WithSearch("FOX"), WithSort(SortOldest)))
	req.Equal([]domain.AssetId{1, 2, 3}, ids(p))

	p = MarketView(assets, now, opts(t, WithSearch("2")))
	req.Equal([]domain.AssetId{12, 2}, ids(p), "id substring")
}

func TestSortTieBreakByIdAscending(t *testing.T) {
	req := require.New(t)
	assets := []Asset{
		listing(5, "five", "1", RarityCommon),
		listing(3, "three", "1", RarityCommon),
		listing(9, "nine", "2", RarityCommon),
	}

	p := MarketView(assets, now, opts(t, WithSort(SortPriceLow)))
	req.Equal([]domain.AssetId{3, 5, 9}, ids(p))

	p = MarketView(assets, now, opts(t, WithSort(SortPriceHigh)))
	req.Equal([]domain.AssetId{9, 3, 5}, ids(p))

	p = MarketView(assets, now, opts(t, WithSort(SortNewest)))
	req.Equal([]domain.AssetId{9, 5, 3}, ids(p))

	req.Equal(domain.AssetId(5), assets[0].Id, "snapshot is not reordered")
}

func TestPaginate(t *testing.T) {
	req := require.New(t)
	assets := []Asset{}
	for i := 1; i <= 19; i++ {
		assets = append(assets, listing(uint64(i), "a", "1", RarityCommon))
	}

	p := MarketView(assets, now, opts(t, WithSort(SortOldest)))
	req.Len(p.Items, DefaultPageSize)
	req.Equal(3, p.TotalPages)
	req.Equal(19, p.Total)

	p = MarketView(assets, now, opts(t, WithSort(SortOldest), WithPage(3, 8)))
	req.Equal([]domain.AssetId{17, 18, 19}, ids(p))

	p = MarketView(assets, now, opts(t, WithPage(4, 8)))
	req.Empty(p.Items)

	p = Paginate(nil, 1, 8)
	req.Equal(0, p.TotalPages)
	req.NotNil(p.Items)
}

func TestOwnedView(t *testing.T) {
	req := require.New(t)
	assets := []Asset{
		listing(1, "listed", "1", RarityCommon),
		{Id: 2, Name: "idle"},
		auction(3, "auction", "1", now.Unix()-5),
	}

	p := OwnedView(assets, now, opts(t, WithSort(SortOldest)))
	req.Equal([]domain.AssetId{1, 2, 3}, ids(p), "owned view keeps ended auctions and unlisted assets")

	p = OwnedView(assets, now, opts(t, WithOwnedStatus(OwnedStatusNotListed)))
	req.Equal([]domain.AssetId{2}, ids(p))

	p = OwnedView(assets, now, opts(t, WithOwnedStatus(OwnedStatusForSale)))
	req.Equal([]domain.AssetId{1}, ids(p))

	p = OwnedView(assets, now, opts(t, WithOwnedStatus(OwnedStatusForAuction)))
	req.Equal([]domain.AssetId{3}, ids(p))
}

func TestInvalidOptions(t *testing.T) {
	req := require.New(t)
	_, err := GetViewOptions(WithRarity(0))
	req.ErrorIs(err, domain.ErrBadParamInput)
	_, err = GetViewOptions(WithSort("random"))
	req.ErrorIs(err, domain.ErrBadParamInput)
	_, err = GetViewOptions(WithStatus("sold"))
	req.ErrorIs(err, domain.ErrBadParamInput)
	_, err = GetViewOptions(WithPage(0, 8))
	req.ErrorIs(err, domain.ErrBadParamInput)
	min, max := apt("2"), apt("1")
	_, err = GetViewOptions(WithPriceRange(&min, &max))
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func TestAuctionRules(t *testing.T) {
	req := require.New(t)
	a := &Auction{StartingBid: apt("100"), HighestBid: apt("150"), EndTime: now.Unix() + 1}
	req.Equal("150.1", a.MinimumBid().String())
	req.True(a.IsActive(now))
	req.False(a.IsExpired(now))
	req.False(a.IsActive(now.Add(time.Second)))
	req.False(a.IsExpired(now.Add(time.Second)), "expired is strict")
	req.True(a.IsExpired(now.Add(2 * time.Second)))

	fresh := &Auction{StartingBid: apt("100"), HighestBid: currency.Zero}
	req.Equal("100", fresh.MinimumBid().String())

	req.Equal("Super Rare", RaritySuperRare.String())
	req.Equal("Unknown", Rarity(9).String())
}
