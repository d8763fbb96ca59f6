package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/tx"
	"github.com/x-xyz/marketclient/middleware"
)

type handler struct {
	txs tx.Usecase
}

func New(e *echo.Echo, txs tx.Usecase, authMiddleware *middleware.GoMiddleware) {
	h := &handler{txs}

	g := e.Group("/tx")
	g.POST("/:kind", h.submit, authMiddleware.Auth())
	g.POST("/:kind/payload", h.payload, authMiddleware.Auth())
}

type actionParams struct {
	AssetId domain.AssetId `json:"assetId"`
	OfferId domain.OfferId `json:"offerId"`
	// Amount is in display units, e.g. "1.5"
	Amount string `json:"amount" validate:"omitempty,numeric"`
	Days   int    `json:"days" validate:"gte=0"`
	// Duration is in seconds
	Duration int64 `json:"duration" validate:"gte=0"`

	To      domain.Address `json:"to" validate:"omitempty,address"`
	Message string         `json:"message"`
	IsGift  bool           `json:"isGift"`

	Name        string       `json:"name"`
	Description string       `json:"description"`
	Uri         string       `json:"uri" validate:"omitempty,uri"`
	Rarity      asset.Rarity `json:"rarity"`

	Target domain.Address `json:"target" validate:"omitempty,address"`
}

func (p *actionParams) toAction(kind tx.Kind) (tx.Action, error) {
	a := tx.Action{
		Kind:        kind,
		AssetId:     p.AssetId,
		OfferId:     p.OfferId,
		Days:        p.Days,
		Duration:    time.Duration(p.Duration) * time.Second,
		To:          p.To,
		Message:     p.Message,
		IsGift:      p.IsGift,
		Name:        p.Name,
		Description: p.Description,
		Uri:         p.Uri,
		Rarity:      p.Rarity,
		Target:      p.Target,
	}
	if p.Amount != "" {
		amount, err := currency.ParseDisplay(p.Amount)
		if err != nil {
			return a, err
		}
		a.Amount = amount
	}
	return a, nil
}

func (h *handler) bind(c echo.Context) (tx.Action, error) {
	p := &actionParams{}
	if err := c.Bind(p); err != nil {
		return tx.Action{}, domain.ErrBadParamInput
	}
	if err := c.Validate(p); err != nil {
		return tx.Action{}, domain.ErrBadParamInput
	}
	return p.toAction(tx.Kind(c.Param("kind")))
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	action, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	receipt, err := h.txs.Submit(ctx, action)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "kind": action.Kind}).Error("txs.Submit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) payload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	action, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.txs.Payload(ctx, action)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "kind": action.Kind}).Warn("txs.Payload failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
