package asset

import (
	"sort"
	"strings"
	"time"

	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
)

type Status string

const (
	StatusAll     Status = "all"
	StatusAuction Status = "auction"
	StatusBuyNow  Status = "buyNow"
)

type OwnedStatus string

const (
	OwnedStatusAll        OwnedStatus = "all"
	OwnedStatusNotListed  OwnedStatus = "not_listed"
	OwnedStatusForSale    OwnedStatus = "for_sale"
	OwnedStatusForAuction OwnedStatus = "for_auction"
)

type SortBy string

const (
	SortNewest    SortBy = "newest"
	SortOldest    SortBy = "oldest"
	SortPriceHigh SortBy = "priceHigh"
	SortPriceLow  SortBy = "priceLow"
)

const DefaultPageSize = 8

type ViewOptions struct {
	Rarity      *Rarity
	MinPrice    *currency.Amount
	MaxPrice    *currency.Amount
	Status      Status
	OwnedStatus OwnedStatus
	Search      string
	SortBy      SortBy
	Page        int
	PageSize    int
}

type ViewOptionsFunc func(*ViewOptions) error

func GetViewOptions(opts ...ViewOptionsFunc) (ViewOptions, error) {
	res := ViewOptions{
		Status:      StatusAll,
		OwnedStatus: OwnedStatusAll,
		SortBy:      SortNewest,
		Page:        1,
		PageSize:    DefaultPageSize,
	}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithRarity(r Rarity) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		if !r.IsValid() {
			return domain.ErrBadParamInput
		}
		options.Rarity = &r
		return nil
	}
}

// WithPriceRange bounds are inclusive, either may be nil
func WithPriceRange(min, max *currency.Amount) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		if min != nil && max != nil && min.Cmp(*max) > 0 {
			return domain.ErrBadParamInput
		}
		options.MinPrice = min
		options.MaxPrice = max
		return nil
	}
}

func WithStatus(s Status) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		switch s {
		case StatusAll, StatusAuction, StatusBuyNow:
			options.Status = s
			return nil
		}
		return domain.ErrBadParamInput
	}
}

func WithOwnedStatus(s OwnedStatus) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		switch s {
		case OwnedStatusAll, OwnedStatusNotListed, OwnedStatusForSale, OwnedStatusForAuction:
			options.OwnedStatus = s
			return nil
		}
		return domain.ErrBadParamInput
	}
}

func WithSearch(q string) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		options.Search = strings.TrimSpace(q)
		return nil
	}
}

func WithSort(by SortBy) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		switch by {
		case SortNewest, SortOldest, SortPriceHigh, SortPriceLow:
			options.SortBy = by
			return nil
		}
		return domain.ErrBadParamInput
	}
}

func WithPage(page, size int) ViewOptionsFunc {
	return func(options *ViewOptions) error {
		if page < 1 || size < 1 {
			return domain.ErrBadParamInput
		}
		options.Page = page
		options.PageSize = size
		return nil
	}
}

type Page struct {
	Items      []Asset `json:"items"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

// MarketView applies the listing visibility rule, then filters, sorts and
// paginates. It never mutates assets.
func MarketView(assets []Asset, now time.Time, opts ViewOptions) Page {
	res := make([]Asset, 0, len(assets))
	for i := range assets {
		a := &assets[i]
		if !a.IsListed(now) || !matchStatus(a, opts.Status) || !matchCommon(a, opts) {
			continue
		}
		res = append(res, *a)
	}
	Sort(res, opts.SortBy)
	return Paginate(res, opts.Page, opts.PageSize)
}

// OwnedView shows every asset in the snapshot, listed or not
func OwnedView(assets []Asset, now time.Time, opts ViewOptions) Page {
	res := make([]Asset, 0, len(assets))
	for i := range assets {
		a := &assets[i]
		if !matchOwnedStatus(a, opts.OwnedStatus) || !matchCommon(a, opts) {
			continue
		}
		res = append(res, *a)
	}
	Sort(res, opts.SortBy)
	return Paginate(res, opts.Page, opts.PageSize)
}

func matchStatus(a *Asset, s Status) bool {
	switch s {
	case StatusAuction:
		return a.IsAuction()
	case StatusBuyNow:
		return !a.IsAuction()
	}
	return true
}

func matchOwnedStatus(a *Asset, s OwnedStatus) bool {
	switch s {
	case OwnedStatusNotListed:
		return !a.ForSale && !a.IsAuction()
	case OwnedStatusForSale:
		return a.ForSale
	case OwnedStatusForAuction:
		return a.IsAuction()
	}
	return true
}

func matchCommon(a *Asset, opts ViewOptions) bool {
	if opts.Rarity != nil && a.Rarity != *opts.Rarity {
		return false
	}
	price := a.DisplayPrice()
	if opts.MinPrice != nil && price.Cmp(*opts.MinPrice) < 0 {
		return false
	}
	if opts.MaxPrice != nil && price.Cmp(*opts.MaxPrice) > 0 {
		return false
	}
	if opts.Search != "" {
		q := strings.ToLower(opts.Search)
		if !strings.Contains(strings.ToLower(a.Name), q) && !strings.Contains(a.Id.String(), q) {
			return false
		}
	}
	return true
}

// Sort orders in place. Equal keys always fall back to id ascending.
func Sort(assets []Asset, by SortBy) {
	sort.SliceStable(assets, func(i, j int) bool {
		a, b := &assets[i], &assets[j]
		switch by {
		case SortOldest:
			return a.Id < b.Id
		case SortPriceHigh:
			if c := a.DisplayPrice().Cmp(b.DisplayPrice()); c != 0 {
				return c > 0
			}
			return a.Id < b.Id
		case SortPriceLow:
			if c := a.DisplayPrice().Cmp(b.DisplayPrice()); c != 0 {
				return c < 0
			}
			return a.Id < b.Id
		default:
			return a.Id > b.Id
		}
	})
}

// Paginate slices a 1-based page. Pages past the end are empty.
func Paginate(assets []Asset, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(assets)
	p := Page{
		Items:      []Asset{},
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}
	start := (page - 1) * size
	if start >= total {
		return p
	}
	end := start + size
	if end > total {
		end = total
	}
	p.Items = assets[start:end]
	return p
}
