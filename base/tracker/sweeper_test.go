package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/asset"
	marketMocks "github.com/x-xyz/marketclient/domain/market/mocks"
	domainMocks "github.com/x-xyz/marketclient/domain/mocks"
	"github.com/x-xyz/marketclient/domain/tx"
	txMocks "github.com/x-xyz/marketclient/domain/tx/mocks"
)

type sweeperSuite struct {
	suite.Suite

	market  *marketMocks.Usecase
	tx      *txMocks.Usecase
	wallet  *domainMocks.Wallet
	sweeper *Sweeper
}

func TestSweeper(t *testing.T) {
	suite.Run(t, new(sweeperSuite))
}

func (s *sweeperSuite) SetupTest() {
	s.market = &marketMocks.Usecase{}
	s.tx = &txMocks.Usecase{}
	s.wallet = &domainMocks.Wallet{}
	s.sweeper = NewSweeper(&SweeperCfg{Market: s.market, Tx: s.tx, Wallet: s.wallet})
}

func endAuction(id domain.AssetId) interface{} {
	return mock.MatchedBy(func(a tx.Action) bool {
		return a.Kind == tx.KindEndAuction && a.AssetId == id
	})
}

func expiredAt(id domain.AssetId) asset.Asset {
	return asset.Asset{Id: id, Auction: &asset.Auction{EndTime: 100}}
}

func (s *sweeperSuite) TestSkipsWithoutWallet() {
	s.wallet.On("Account").Return(nil)
	s.Equal(0, s.sweeper.Sweep(bCtx.Background()))
	s.market.AssertNotCalled(s.T(), "ExpiredAuctions", mock.Anything)
}

func (s *sweeperSuite) TestFinalizesEachAuctionOnce() {
	addr := domain.Address("0xb0b")
	s.wallet.On("Account").Return(&addr)
	s.market.On("ExpiredAuctions", mock.Anything).
		Return([]asset.Asset{expiredAt(3), expiredAt(5), expiredAt(3)}, nil)
	s.tx.On("Submit", mock.Anything, endAuction(3)).Return(&tx.Receipt{Kind: tx.KindEndAuction}, nil).Once()
	s.tx.On("Submit", mock.Anything, endAuction(5)).Return(&tx.Receipt{Kind: tx.KindEndAuction}, nil).Once()

	s.Equal(2, s.sweeper.Sweep(bCtx.Background()))
	s.tx.AssertNumberOfCalls(s.T(), "Submit", 2)
}

func (s *sweeperSuite) TestAlreadyFinalizedIsNoop() {
	addr := domain.Address("0xb0b")
	s.wallet.On("Account").Return(&addr)
	s.market.On("ExpiredAuctions", mock.Anything).Return([]asset.Asset{expiredAt(3), expiredAt(4)}, nil)
	s.tx.On("Submit", mock.Anything, endAuction(3)).
		Return(nil, &domain.SubmissionError{Hash: "0x1", Reason: "Move abort: E_AUCTION_NOT_ACTIVE"})
	s.tx.On("Submit", mock.Anything, endAuction(4)).
		Return(nil, &domain.SubmissionError{Hash: "0x2", Reason: "Move abort: EOUT_OF_GAS"})

	s.Equal(0, s.sweeper.Sweep(bCtx.Background()))
	s.True(isAlreadyFinalized(&domain.SubmissionError{Reason: "auction already ended"}))
	s.False(isAlreadyFinalized(&domain.SubmissionError{Reason: "EOUT_OF_GAS"}))
	s.False(isAlreadyFinalized(errors.New("E_AUCTION_NOT_ACTIVE")))
}

func (s *sweeperSuite) TestFailuresRetryNextTick() {
	addr := domain.Address("0xb0b")
	s.wallet.On("Account").Return(&addr)
	s.market.On("ExpiredAuctions", mock.Anything).Return([]asset.Asset{expiredAt(7)}, nil)
	s.tx.On("Submit", mock.Anything, endAuction(7)).Return(nil, &domain.SignatureError{Err: errors.New("rejected")}).Once()
	s.tx.On("Submit", mock.Anything, endAuction(7)).Return(&tx.Receipt{}, nil).Once()

	s.Equal(0, s.sweeper.Sweep(bCtx.Background()))
	s.Equal(1, s.sweeper.Sweep(bCtx.Background()))
}

func (s *sweeperSuite) TestExpiredAuctionsError() {
	addr := domain.Address("0xb0b")
	s.wallet.On("Account").Return(&addr)
	s.market.On("ExpiredAuctions", mock.Anything).Return(nil, domain.ErrNotMounted)
	s.Equal(0, s.sweeper.Sweep(bCtx.Background()))
	s.tx.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}
