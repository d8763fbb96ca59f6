package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketclient/base/countdown"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/market/mocks"
)

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	market *mocks.Usecase
	syncer *mocks.Syncer
	now    time.Time
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.market = &mocks.Usecase{}
	s.syncer = &mocks.Syncer{}
	s.now = time.Unix(1_700_000_000, 0)
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.market, s.syncer, domain.ClockFunc(func() time.Time { return s.now }))
}

func (s *handlerSuite) serve(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func (s *handlerSuite) TestGetMarket() {
	s.syncer.On("Read", mock.Anything, market.Market(), "rarity=2&min=&max=&status=&search=&sort=priceLow").Return().Once()
	s.market.On("MarketView", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&asset.Page{Items: []asset.Asset{{Id: 3}}, Total: 1, Page: 2, PageSize: 8}, nil).Once()

	rec := s.serve(http.MethodGet, "/market?rarity=2&sort=priceLow&page=2")
	s.Equal(http.StatusOK, rec.Code)

	res := struct {
		Data asset.Page `json:"data"`
	}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(1, res.Data.Total)
	s.Equal(domain.AssetId(3), res.Data.Items[0].Id)
	s.market.AssertNotCalled(s.T(), "Refresh", mock.Anything, mock.Anything)
	s.syncer.AssertExpectations(s.T())
}

func (s *handlerSuite) TestGetMarketRefresh() {
	s.syncer.On("Read", mock.Anything, market.Market(), mock.Anything).Return()
	s.market.On("Refresh", mock.Anything, market.Market()).
		Return(nil, &domain.SyncError{Scope: "market", Err: domain.ErrNotFound}).Once()
	s.market.On("MarketView", mock.Anything).Return(&asset.Page{}, nil)

	rec := s.serve(http.MethodGet, "/market?refresh=true")
	s.Equal(http.StatusOK, rec.Code)
	s.market.AssertExpectations(s.T())
}

func (s *handlerSuite) TestGetMarketBadParams() {
	rec := s.serve(http.MethodGet, "/market?minPrice=abc")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.syncer.AssertNotCalled(s.T(), "Read", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestGetMarketNotLoaded() {
	s.syncer.On("Read", mock.Anything, market.Market(), mock.Anything).Return()
	s.market.On("MarketView", mock.Anything).
		Return(nil, &domain.SyncError{Scope: "market", Err: domain.ErrSubmissionStatusUnknown})

	rec := s.serve(http.MethodGet, "/market")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *handlerSuite) TestOwned() {
	owner := domain.Address("0xb0b")
	s.syncer.On("Read", mock.Anything, market.Owned(owner), "rarity=0&min=&max=&status=for_sale&search=&sort=").Return()
	s.market.On("OwnedView", mock.Anything, owner, mock.Anything).Return(&asset.Page{}, nil)
	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/owned/0xb0b?status=for_sale").Code)

	s.syncer.On("Unmount", mock.Anything, market.Owned(owner)).Return().Once()
	s.Equal(http.StatusOK, s.serve(http.MethodDelete, "/owned/0xb0b").Code)
	s.syncer.AssertExpectations(s.T())

	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/owned/bob").Code)
}

func (s *handlerSuite) TestOffers() {
	owner := domain.Address("0xb0b")
	s.syncer.On("Read", mock.Anything, market.Offers(owner), "").Return()
	s.market.On("OffersView", mock.Anything, owner).Return(&market.OffersView{Owner: owner}, nil)
	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/offers/0xb0b").Code)
}

func (s *handlerSuite) TestPagingKeepsFilter() {
	filter := "rarity=0&min=&max=&status=&search=&sort=priceHigh"
	s.syncer.On("Read", mock.Anything, market.Market(), filter).Return().Twice()
	s.market.On("MarketView", mock.Anything, mock.Anything, mock.Anything).Return(&asset.Page{}, nil)

	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/market?sort=priceHigh&page=1").Code)
	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/market?sort=priceHigh&page=2").Code)
	s.syncer.AssertExpectations(s.T())
}

func (s *handlerSuite) TestGetAsset() {
	s.market.On("FindAsset", mock.Anything, domain.AssetId(5)).Return(nil, domain.ErrNotFound)
	s.Equal(http.StatusNotFound, s.serve(http.MethodGet, "/assets/5").Code)
	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/assets/x").Code)
}

func (s *handlerSuite) TestCountdown() {
	rec := s.serve(http.MethodGet, "/countdown?kind=offer&deadline=1700000000")
	s.Equal(http.StatusOK, rec.Code)
	res := struct {
		Data countdown.Status `json:"data"`
	}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.True(res.Data.IsTerminal)
	s.Equal(countdown.LabelOfferExpired, res.Data.Label)

	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/countdown?kind=sale&deadline=1").Code)
}
