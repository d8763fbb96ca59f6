package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
)

const (
	// ModuleName is the Move module holding the marketplace
	ModuleName = "NFTMarketplace"

	EntryFunctionPayload = "entry_function_payload"
)

// MarketFunction returns the fully qualified function id
func MarketFunction(market Address, name string) string {
	return fmt.Sprintf("%s::%s::%s", market, ModuleName, name)
}

// MarketResource returns the fully qualified marketplace resource type
func MarketResource(market Address) string {
	return fmt.Sprintf("%s::%s::Marketplace", market, ModuleName)
}

type ViewRequest struct {
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

type Payload struct {
	Type          string        `json:"type"`
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

func NewPayload(function string, args ...interface{}) Payload {
	if args == nil {
		args = []interface{}{}
	}
	return Payload{
		Type:          EntryFunctionPayload,
		Function:      function,
		TypeArguments: []string{},
		Arguments:     args,
	}
}

type TxHandle struct {
	Hash TxHash `json:"hash"`
}

// Transaction is a committed transaction as reported by the ledger
type Transaction struct {
	Hash      TxHash    `json:"hash"`
	Version   uint64    `json:"version"`
	Success   bool      `json:"success"`
	VmStatus  string    `json:"vmStatus"`
	Timestamp time.Time `json:"timestamp"`
}

type LedgerInfo struct {
	ChainId         int       `json:"chainId"`
	LedgerVersion   uint64    `json:"ledgerVersion"`
	LedgerTimestamp time.Time `json:"ledgerTimestamp"`
}

// Ledger is the authoritative store. Reads are views and account resources;
// writes are confirmed through WaitForTransaction.
type Ledger interface {
	View(c ctx.Ctx, req ViewRequest) ([]json.RawMessage, error)
	AccountResource(c ctx.Ctx, address Address, resourceType string, container interface{}) error
	WaitForTransaction(c ctx.Ctx, hash TxHash) (*Transaction, error)
	LedgerInfo(c ctx.Ctx) (*LedgerInfo, error)
}

// Wallet signs and submits on behalf of the connected account
type Wallet interface {
	// Account is nil when disconnected
	Account() *Address
	SignAndSubmit(c ctx.Ctx, payload Payload) (*TxHandle, error)
	Disconnect()
}
