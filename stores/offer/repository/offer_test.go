package repository

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/movecodec"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/mocks"
	"github.com/x-xyz/marketclient/domain/offer"
)

const market = domain.Address("0xa11ce")

var mockCtx = ctx.Background()

func raws(vals ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		out = append(out, json.RawMessage(v))
	}
	return out
}

func viewOf(name string, arg string) interface{} {
	return mock.MatchedBy(func(req domain.ViewRequest) bool {
		return req.Function == domain.MarketFunction(market, name) &&
			len(req.Arguments) == 2 &&
			req.Arguments[0] == market.String() &&
			req.Arguments[1] == arg
	})
}

type offerSuite struct {
	suite.Suite
	ledger *mocks.Ledger
	repo   offer.Repo
}

func TestOfferSuite(t *testing.T) {
	suite.Run(t, new(offerSuite))
}

func (s *offerSuite) SetupTest() {
	s.ledger = mocks.NewLedger(s.T())
	s.repo = NewRepo(&RepoCfg{Ledger: s.ledger, Market: market, Concurrency: 2})
}

func (s *offerSuite) TestGet() {
	s.ledger.On("View", mock.Anything, viewOf("get_offer_details", "12")).
		Return(raws(`"3"`, `"0xb0b"`, `"120000000"`, `"1700000000"`, `3`), nil).Once()

	o, err := s.repo.Get(mockCtx, 12)
	s.Require().NoError(err)
	s.Equal(domain.OfferId(12), o.Id)
	s.Equal(domain.AssetId(3), o.NftId)
	s.Equal(domain.Address("0xb0b"), o.Buyer)
	s.Equal("120000000", o.Amount.RawString())
	s.Equal(int64(1700000000), o.Expiration)
	s.Equal(offer.StatusCountered, o.Status)
}

func (s *offerSuite) TestGetUnknownStatus() {
	s.ledger.On("View", mock.Anything, viewOf("get_offer_details", "12")).
		Return(raws(`"3"`, `"0xb0b"`, `"1"`, `"1"`, `9`), nil).Once()

	_, err := s.repo.Get(mockCtx, 12)
	s.True(domain.IsDecodeError(err))
	s.ErrorIs(err, offer.ErrUnknownStatus)
}

func (s *offerSuite) TestListForAssets() {
	s.ledger.On("View", mock.Anything, viewOf("get_offers_for_nft", "1")).Return(raws(`["11","10"]`), nil).Once()
	s.ledger.On("View", mock.Anything, viewOf("get_offers_for_nft", "2")).Return(raws(`[]`), nil).Once()
	s.ledger.On("View", mock.Anything, viewOf("get_offer_details", "10")).
		Return(raws(`"1"`, `"0xb0b"`, `"1"`, `"1700000000"`, `0`), nil).Once()
	// malformed buyer
	s.ledger.On("View", mock.Anything, viewOf("get_offer_details", "11")).
		Return(raws(`"1"`, `"bob"`, `"1"`, `"1700000000"`, `0`), nil).Once()

	offers, dropped, err := s.repo.ListForAssets(mockCtx, []domain.AssetId{1, 2})
	s.Require().NoError(err)
	s.Equal(1, dropped)
	s.Require().Len(offers, 1)
	s.Equal(domain.OfferId(10), offers[0].Id)
}

func (s *offerSuite) TestListForAssetsTransportError() {
	errDown := errors.New("timeout")
	s.ledger.On("View", mock.Anything, viewOf("get_offers_for_nft", "1")).Return(nil, errDown).Once()

	_, _, err := s.repo.ListForAssets(mockCtx, []domain.AssetId{1})
	s.ErrorIs(err, errDown)
}

func (s *offerSuite) TestListCounterOffers() {
	s.ledger.On("View", mock.Anything, viewOf("get_counter_offers_for_buyer", "0xb0b")).Return(raws(`["21"]`), nil).Once()
	s.ledger.On("View", mock.Anything, viewOf("get_offer_details", "21")).
		Return(raws(`"4"`, `"0xb0b"`, `"300000000"`, `"1700000000"`, `4`), nil).Once()
	s.ledger.On("View", mock.Anything, viewOf("get_nft_details", "4")).
		Return(raws(`"4"`, `"0xca7"`, `"`+movecodec.EncodeText("Four")+`"`, `"0x"`, `"0x"`, `"0"`, `false`, `1`), nil).Once()

	counters, dropped, err := s.repo.ListCounterOffers(mockCtx, "0xb0b")
	s.Require().NoError(err)
	s.Zero(dropped)
	s.Require().Len(counters, 1)
	s.Equal(domain.OfferId(21), counters[0].Id)
	s.Equal("Four", counters[0].NftName)
	s.Equal(offer.StatusCounter, counters[0].Status)
}
