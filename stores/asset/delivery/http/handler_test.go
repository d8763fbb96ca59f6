package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/asset/mocks"
)

func newServer(repo asset.Repo) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, repo)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetGift(t *testing.T) {
	req := require.New(t)
	repo := &mocks.Repo{}
	repo.On("GetGift", mock.Anything, domain.AssetId(4)).Return(&asset.Gift{IsGift: true, Message: "gm", From: "0xb0b", Timestamp: 1700000000}, nil)
	repo.On("GetGift", mock.Anything, domain.AssetId(5)).Return(nil, errors.New("connection reset"))
	e := newServer(repo)

	rec := get(e, "/assets/4/gift")
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":{"isGift":true,"message":"gm","from":"0xb0b","timestamp":1700000000},"status":"success"}`, rec.Body.String())

	req.Equal(http.StatusInternalServerError, get(e, "/assets/5/gift").Code)
	req.Equal(http.StatusBadRequest, get(e, "/assets/four/gift").Code)
	repo.AssertNumberOfCalls(t, "GetGift", 2)
}
