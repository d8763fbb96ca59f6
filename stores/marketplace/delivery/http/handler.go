package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/marketplace"
	"github.com/x-xyz/marketclient/middleware"
)

type handler struct {
	marketplace marketplace.Usecase
}

func New(e *echo.Echo, marketplace marketplace.Usecase) {
	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.GET("/config", h.getConfig)

	g.GET("/stats", h.getStats, middleware.CacheHttp(10*time.Second))

	g.GET("/stats/rarity", h.getRarityVolumes, middleware.CacheHttp(10*time.Second))

	g.GET("/stats/rarity/:rarity", h.getRarityVolume, middleware.CacheHttp(10*time.Second))

	g.GET("/whitelist/:address", h.isWhitelisted, middleware.IsValidAddress("address"))

	g.GET("/minting-fee/:address", h.getMintingFee, middleware.IsValidAddress("address"))
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.marketplace.GetConfig(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetConfig failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getStats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.marketplace.GetStats(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetStats failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getRarityVolumes(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.marketplace.GetRarityVolumes(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetRarityVolumes failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getRarityVolume(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	n, err := strconv.ParseUint(c.Param("rarity"), 10, 8)
	if err != nil || !asset.Rarity(n).IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid rarity")
	}
	res, err := h.marketplace.GetRarityVolumes(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.GetRarityVolumes failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	for _, v := range res {
		if v.Rarity == asset.Rarity(n) {
			return delivery.MakeJsonResp(c, http.StatusOK, v)
		}
	}
	return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
}

func (h *handler) isWhitelisted(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	ok, err := h.marketplace.IsWhitelisted(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.IsWhitelisted failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Address     domain.Address `json:"address"`
		Whitelisted bool           `json:"whitelisted"`
	}{address, ok})
}

func (h *handler) getMintingFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	fee, err := h.marketplace.EffectiveMintingFee(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("marketplace.EffectiveMintingFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fee)
}
