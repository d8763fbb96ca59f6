package aptos

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 2xx")
	ErrPendingTimeout  = errors.New("transaction still pending")
)

// Client is a minimal Aptos fullnode REST client
type Client interface {
	domain.Ledger
	Account(ctx bCtx.Ctx, address domain.Address) (*Account, error)
	// EncodeSubmission returns the signing message for an unsigned transaction
	EncodeSubmission(ctx bCtx.Ctx, req *UnsignedTransaction) ([]byte, error)
	SubmitTransaction(ctx bCtx.Ctx, req *SignedTransaction) (*domain.TxHandle, error)
}

type ClientCfg struct {
	HttpClient http.Client
	// Endpoint is the fullnode base url without the /v1 suffix
	Endpoint string
	Timeout  time.Duration
	// PollInterval is the first WaitForTransaction backoff, doubled up to PollLimit
	PollInterval time.Duration
	PollLimit    time.Duration
}

// ApiError is the body of a non-2xx fullnode response
type ApiError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	ErrorCode   string `json:"error_code"`
	VmErrorCode *int   `json:"vm_error_code,omitempty"`
}

func (e *ApiError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("aptos %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("aptos %d: %s", e.StatusCode, e.Message)
}

func (e *ApiError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return ErrStatusCodeNotOk
}

type Account struct {
	SequenceNumber    uint64 `json:"sequence_number,string"`
	AuthenticationKey string `json:"authentication_key"`
}

type UnsignedTransaction struct {
	Sender                  domain.Address `json:"sender"`
	SequenceNumber          uint64         `json:"sequence_number,string"`
	MaxGasAmount            uint64         `json:"max_gas_amount,string"`
	GasUnitPrice            uint64         `json:"gas_unit_price,string"`
	ExpirationTimestampSecs uint64         `json:"expiration_timestamp_secs,string"`
	Payload                 domain.Payload `json:"payload"`
}

type Signature struct {
	Type      string `json:"type"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

const Ed25519Signature = "ed25519_signature"

type SignedTransaction struct {
	UnsignedTransaction
	Signature Signature `json:"signature"`
}

type resource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ledgerInfo struct {
	ChainId         int    `json:"chain_id"`
	LedgerVersion   uint64 `json:"ledger_version,string"`
	LedgerTimestamp int64  `json:"ledger_timestamp,string"`
}

const (
	typePending = "pending_transaction"
)

type transaction struct {
	Type      string `json:"type"`
	Hash      string `json:"hash"`
	Version   uint64 `json:"version,string"`
	Success   bool   `json:"success"`
	VmStatus  string `json:"vm_status"`
	Timestamp int64  `json:"timestamp,string"`
}
