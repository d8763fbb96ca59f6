package wallet

import (
	"crypto/ed25519"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/aptos"
	"github.com/x-xyz/marketclient/service/aptos/mocks"
)

const testSeed = "0x9bf49a6a0755f953811fce125f2683d50429c3bb49e074147e0089a52eae155f"

type walletSuite struct {
	suite.Suite
	client *mocks.Client
	wallet *Local
	now    time.Time
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	s.client = &mocks.Client{}
	s.now = time.Unix(1_700_000_000, 0)
	w, err := NewLocal(&LocalCfg{
		Client:     s.client,
		PrivateKey: testSeed,
		Expiration: time.Minute,
		Clock:      domain.ClockFunc(func() time.Time { return s.now }),
	})
	s.Require().NoError(err)
	s.wallet = w
}

func (s *walletSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

func (s *walletSuite) TestDerivedAddress() {
	account := s.wallet.Account()
	s.Require().NotNil(account)
	s.Len(string(*account), 66)
	s.Equal(AuthenticationKey(s.wallet.key.Public().(ed25519.PublicKey)), *account)
}

func (s *walletSuite) TestConfiguredAddressWins() {
	w, err := NewLocal(&LocalCfg{Client: s.client, PrivateKey: testSeed, Address: "0xCAFE"})
	s.Require().NoError(err)
	s.Equal(domain.Address("0xcafe").Canonical(), *w.Account())
}

func (s *walletSuite) TestInvalidKey() {
	_, err := NewLocal(&LocalCfg{Client: s.client, PrivateKey: "0x1234"})
	s.ErrorIs(err, ErrInvalidPrivateKey)
	_, err = NewLocal(&LocalCfg{Client: s.client, PrivateKey: "not hex"})
	s.ErrorIs(err, ErrInvalidPrivateKey)
}

func (s *walletSuite) TestSignAndSubmit() {
	ctx := bCtx.Background()
	address := *s.wallet.Account()
	payload := domain.NewPayload("0x1::NFTMarketplace::purchase_nft", "0x1", "3")
	msg := []byte("signing message")

	s.client.On("Account", mock.Anything, address).Return(&aptos.Account{SequenceNumber: 11}, nil).Once()
	s.client.On("EncodeSubmission", mock.Anything, mock.MatchedBy(func(tx *aptos.UnsignedTransaction) bool {
		return tx.SequenceNumber == 11 &&
			tx.Sender == address &&
			tx.ExpirationTimestampSecs == uint64(s.now.Add(time.Minute).Unix()) &&
			tx.MaxGasAmount == defaultMaxGasAmount &&
			tx.Payload.Function == payload.Function
	})).Return(msg, nil).Once()
	s.client.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(tx *aptos.SignedTransaction) bool {
		pub, err := hexutil.Decode(tx.Signature.PublicKey)
		if err != nil {
			return false
		}
		sig, err := hexutil.Decode(tx.Signature.Signature)
		if err != nil {
			return false
		}
		return tx.Signature.Type == aptos.Ed25519Signature && ed25519.Verify(pub, msg, sig)
	})).Return(&domain.TxHandle{Hash: "0xabc"}, nil).Once()

	handle, err := s.wallet.SignAndSubmit(ctx, payload)
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xabc"), handle.Hash)
}

func (s *walletSuite) TestSubmitRejected() {
	ctx := bCtx.Background()
	s.client.On("Account", mock.Anything, mock.Anything).Return(&aptos.Account{SequenceNumber: 1}, nil).Once()
	s.client.On("EncodeSubmission", mock.Anything, mock.Anything).Return([]byte("m"), nil).Once()
	s.client.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, &aptos.ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    "INSUFFICIENT_BALANCE_FOR_TRANSACTION_FEE",
	}).Once()

	_, err := s.wallet.SignAndSubmit(ctx, domain.NewPayload("0x1::NFTMarketplace::mint_nft"))
	var subErr *domain.SubmissionError
	s.Require().True(errors.As(err, &subErr))
	s.Equal("INSUFFICIENT_BALANCE_FOR_TRANSACTION_FEE", subErr.Reason)
}

func (s *walletSuite) TestDisconnected() {
	s.wallet.Disconnect()
	s.Nil(s.wallet.Account())

	_, err := s.wallet.SignAndSubmit(bCtx.Background(), domain.NewPayload("0x1::NFTMarketplace::mint_nft"))
	s.True(domain.IsSignatureError(err))
	s.ErrorIs(err, domain.ErrWalletDisconnected)
}
