package wallet

import (
	"crypto/ed25519"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/aptos"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid ed25519 private key")
	ErrAddressMismatch   = errors.New("address does not match private key")
)

const (
	// single-signer ed25519 authentication key scheme
	ed25519Scheme = 0x00

	defaultMaxGasAmount = 10000
	defaultGasUnitPrice = 100
	defaultExpiration   = 10 * time.Minute
)

type LocalCfg struct {
	Client aptos.Client
	// PrivateKey is the 32 byte seed or 64 byte key, hex encoded
	PrivateKey string
	// Address defaults to the key's authentication key
	Address      domain.Address
	MaxGasAmount uint64
	GasUnitPrice uint64
	Expiration   time.Duration
	Clock        domain.Clock
}

// Local signs with a key held in process memory
type Local struct {
	client       aptos.Client
	key          ed25519.PrivateKey
	maxGasAmount uint64
	gasUnitPrice uint64
	expiration   time.Duration
	clock        domain.Clock

	mu        sync.Mutex
	address   domain.Address
	connected bool
}

func NewLocal(cfg *LocalCfg) (*Local, error) {
	key, err := parsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	derived := AuthenticationKey(key.Public().(ed25519.PublicKey))
	address := derived
	if !cfg.Address.IsEmpty() {
		// rotated keys keep their original address
		address = cfg.Address.Canonical()
	}
	w := &Local{
		client:       cfg.Client,
		key:          key,
		maxGasAmount: cfg.MaxGasAmount,
		gasUnitPrice: cfg.GasUnitPrice,
		expiration:   cfg.Expiration,
		clock:        cfg.Clock,
		address:      address,
		connected:    true,
	}
	if w.maxGasAmount == 0 {
		w.maxGasAmount = defaultMaxGasAmount
	}
	if w.gasUnitPrice == 0 {
		w.gasUnitPrice = defaultGasUnitPrice
	}
	if w.expiration <= 0 {
		w.expiration = defaultExpiration
	}
	if w.clock == nil {
		w.clock = domain.SystemClock
	}
	return w, nil
}

// AuthenticationKey is sha3-256(public key | scheme), which is also the
// default account address
func AuthenticationKey(pub ed25519.PublicKey) domain.Address {
	h := sha3.New256()
	h.Write(pub)
	h.Write([]byte{ed25519Scheme})
	return domain.Address(hexutil.Encode(h.Sum(nil)))
}

func parsePrivateKey(s string) (ed25519.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	}
	return nil, xerrors.Errorf("%w: length %d", ErrInvalidPrivateKey, len(raw))
}

func (w *Local) Account() *domain.Address {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.connected {
		return nil
	}
	a := w.address
	return &a
}

func (w *Local) Disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.connected = false
}

func (w *Local) PublicKey() string {
	return hexutil.Encode(w.key.Public().(ed25519.PublicKey))
}

// SignAndSubmit is serialized so concurrent calls never reuse a sequence number
func (w *Local) SignAndSubmit(ctx bCtx.Ctx, payload domain.Payload) (*domain.TxHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.connected {
		return nil, &domain.SignatureError{Err: domain.ErrWalletDisconnected}
	}
	ctx = bCtx.WithFields(ctx, log.Fields{"sender": w.address, "function": payload.Function})

	account, err := w.client.Account(ctx, w.address)
	if err != nil {
		ctx.WithField("err", err).Error("client.Account failed")
		return nil, submissionError(err)
	}
	unsigned := aptos.UnsignedTransaction{
		Sender:                  w.address,
		SequenceNumber:          account.SequenceNumber,
		MaxGasAmount:            w.maxGasAmount,
		GasUnitPrice:            w.gasUnitPrice,
		ExpirationTimestampSecs: uint64(w.clock.Now().Add(w.expiration).Unix()),
		Payload:                 payload,
	}
	msg, err := w.client.EncodeSubmission(ctx, &unsigned)
	if err != nil {
		ctx.WithField("err", err).Error("client.EncodeSubmission failed")
		return nil, submissionError(err)
	}
	signed := &aptos.SignedTransaction{
		UnsignedTransaction: unsigned,
		Signature: aptos.Signature{
			Type:      aptos.Ed25519Signature,
			PublicKey: w.PublicKey(),
			Signature: hexutil.Encode(ed25519.Sign(w.key, msg)),
		},
	}
	handle, err := w.client.SubmitTransaction(ctx, signed)
	if err != nil {
		ctx.WithField("err", err).Error("client.SubmitTransaction failed")
		return nil, submissionError(err)
	}
	return handle, nil
}

// ledger rejections keep the node's message as the reason
func submissionError(err error) error {
	var apiErr *aptos.ApiError
	if errors.As(err, &apiErr) {
		return &domain.SubmissionError{Reason: apiErr.Message, Err: err}
	}
	return &domain.SubmissionError{Reason: err.Error(), Err: err}
}
