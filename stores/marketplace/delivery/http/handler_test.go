package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/currency"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/marketplace"
	"github.com/x-xyz/marketclient/domain/marketplace/mocks"
	"github.com/x-xyz/marketclient/middleware"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
)

func newServer(uc marketplace.Usecase) *echo.Echo {
	middleware.SetupCache(primitive.NewPrimitive("http", 1))
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc)
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRarityVolume(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("GetRarityVolumes", mock.Anything).Return([]marketplace.RarityVolume{
		{Rarity: asset.RarityCommon, Label: "Common", Volume: currency.FromUint64(100)},
		{Rarity: asset.RarityRare, Label: "Rare", Volume: currency.FromUint64(300)},
	}, nil)
	e := newServer(uc)

	rec := serve(e, "/marketplace/stats/rarity/3")
	req.Equal(http.StatusOK, rec.Code)
	res := struct {
		Data marketplace.RarityVolume `json:"data"`
	}{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	req.Equal("Rare", res.Data.Label)
	req.Equal("300", res.Data.Volume.RawString())

	req.Equal(http.StatusNotFound, serve(e, "/marketplace/stats/rarity/2").Code)
	req.Equal(http.StatusBadRequest, serve(e, "/marketplace/stats/rarity/9").Code)
}

func TestWhitelist(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("IsWhitelisted", mock.Anything, domain.Address("0xb0b")).Return(true, nil)
	e := newServer(uc)

	rec := serve(e, "/marketplace/whitelist/0xb0b")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":{"address":"0xb0b","whitelisted":true},"status":"success"}`, rec.Body.String())
	req.Equal(http.StatusBadRequest, serve(e, "/marketplace/whitelist/nope").Code)
}

func TestConfigError(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	uc.On("GetConfig", mock.Anything).Return(nil, &domain.SyncError{Scope: "marketplace", Err: domain.ErrNotFound})
	e := newServer(uc)
	req.Equal(http.StatusNotFound, serve(e, "/marketplace/config").Code)
}
