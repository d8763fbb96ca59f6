package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
)

type handler struct {
	assets asset.Repo
}

func New(e *echo.Echo, assets asset.Repo) {
	h := &handler{assets}

	e.GET("/assets/:id/gift", h.getGift)
}

func (h *handler) getGift(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := domain.ParseAssetId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid id")
	}
	res, err := h.assets.GetGift(ctx, id)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("assets.GetGift failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
