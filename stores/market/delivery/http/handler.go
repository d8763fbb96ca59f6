package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/countdown"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/middleware"
)

type handler struct {
	market market.Usecase
	syncer market.Syncer
	clock  domain.Clock
}

func New(e *echo.Echo, market market.Usecase, syncer market.Syncer, clock domain.Clock) {
	h := &handler{market, syncer, clock}

	e.GET("/market", h.getMarket)

	g := e.Group("/owned/:address", middleware.IsValidAddress("address"))
	g.GET("", h.getOwned)
	g.DELETE("", h.unmountOwned)

	og := e.Group("/offers/:address", middleware.IsValidAddress("address"))
	og.GET("", h.getOffers)
	og.DELETE("", h.unmountOffers)

	e.GET("/assets/:id", h.getAsset)

	e.GET("/countdown", h.getCountdown)
}

type viewParams struct {
	Rarity   uint8  `query:"rarity"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Status   string `query:"status"`
	Search   string `query:"search"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Refresh  bool   `query:"refresh"`
}

func parseAmount(s string) (*currency.Amount, error) {
	if s == "" {
		return nil, nil
	}
	a, err := currency.ParseDisplay(s)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	return &a, nil
}

func (p *viewParams) options() ([]asset.ViewOptionsFunc, error) {
	opts := []asset.ViewOptionsFunc{}
	if p.Rarity != 0 {
		opts = append(opts, asset.WithRarity(asset.Rarity(p.Rarity)))
	}
	min, err := parseAmount(p.MinPrice)
	if err != nil {
		return nil, err
	}
	max, err := parseAmount(p.MaxPrice)
	if err != nil {
		return nil, err
	}
	if min != nil || max != nil {
		opts = append(opts, asset.WithPriceRange(min, max))
	}
	if p.Search != "" {
		opts = append(opts, asset.WithSearch(p.Search))
	}
	if p.Sort != "" {
		opts = append(opts, asset.WithSort(asset.SortBy(p.Sort)))
	}
	if p.Page != 0 || p.PageSize != 0 {
		page, size := p.Page, p.PageSize
		if page == 0 {
			page = 1
		}
		if size == 0 {
			size = asset.DefaultPageSize
		}
		opts = append(opts, asset.WithPage(page, size))
	}
	return opts, nil
}

// filter identifies the filter state of a view, paging excluded
func (p *viewParams) filter() string {
	return fmt.Sprintf("rarity=%d&min=%s&max=%s&status=%s&search=%s&sort=%s",
		p.Rarity, p.MinPrice, p.MaxPrice, p.Status, p.Search, p.Sort)
}

// ensure records the read, mounting the scope if needed, and when asked
// refreshes it before the read. A failed refresh still serves the held
// snapshot.
func (h *handler) ensure(c ctx.Ctx, scope market.Scope, filter string, refresh bool) {
	h.syncer.Read(c, scope, filter)
	if !refresh {
		return
	}
	if _, err := h.market.Refresh(c, scope); err != nil {
		c.WithFields(log.Fields{"err": err, "scope": scope.Key()}).Warn("market.Refresh failed")
	}
}

func (h *handler) getMarket(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &viewParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	opts, err := p.options()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Status != "" {
		opts = append(opts, asset.WithStatus(asset.Status(p.Status)))
	}

	h.ensure(ctx, market.Market(), p.filter(), p.Refresh)
	res, err := h.market.MarketView(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("market.MarketView failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("address"))

	p := &viewParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	opts, err := p.options()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Status != "" {
		opts = append(opts, asset.WithOwnedStatus(asset.OwnedStatus(p.Status)))
	}

	h.ensure(ctx, market.Owned(owner), p.filter(), p.Refresh)
	res, err := h.market.OwnedView(ctx, owner, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "owner": owner}).Error("market.OwnedView failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) unmountOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	h.syncer.Unmount(ctx, market.Owned(domain.Address(c.Param("address"))))
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("address"))

	h.ensure(ctx, market.Offers(owner), "", c.QueryParam("refresh") == "true")
	res, err := h.market.OffersView(ctx, owner)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "owner": owner}).Error("market.OffersView failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) unmountOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	h.syncer.Unmount(ctx, market.Offers(domain.Address(c.Param("address"))))
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) getAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := domain.ParseAssetId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}
	res, err := h.market.FindAsset(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getCountdown(c echo.Context) error {
	type params struct {
		Deadline int64  `query:"deadline"`
		Kind     string `query:"kind"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	kind := countdown.Kind(p.Kind)
	if kind != countdown.KindAuction && kind != countdown.KindOffer {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid kind")
	}
	return delivery.MakeJsonResp(c, http.StatusOK, countdown.Evaluate(p.Deadline, kind, h.clock.Now()))
}
