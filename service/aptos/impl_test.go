package aptos

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(&ClientCfg{
		HttpClient:   http.Client{},
		Endpoint:     srv.URL + "/",
		Timeout:      2 * time.Second,
		PollInterval: time.Millisecond,
		PollLimit:    5 * time.Millisecond,
	})
}

func TestView(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/v1/view", r.URL.Path)
		body, _ := ioutil.ReadAll(r.Body)
		got := domain.ViewRequest{}
		req.NoError(json.Unmarshal(body, &got))
		req.Equal("0x1::NFTMarketplace::get_market_stats", got.Function)
		req.NotNil(got.TypeArguments)
		req.Equal([]interface{}{"0x1"}, got.Arguments)
		w.Write([]byte(`["100","2",["0x3"]]`))
	})

	res, err := c.View(bCtx.Background(), domain.ViewRequest{
		Function:  domain.MarketFunction("0x1", "get_market_stats"),
		Arguments: []interface{}{"0x1"},
	})
	req.NoError(err)
	req.Len(res, 3)
	req.JSONEq(`"100"`, string(res[0]))
	req.JSONEq(`["0x3"]`, string(res[2]))
}

func TestAccountResource(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/accounts/0xabc/resource/0xabc::NFTMarketplace::Marketplace", r.URL.Path)
		w.Write([]byte(`{"type":"0xabc::NFTMarketplace::Marketplace","data":{"nfts":[{"id":"1"}]}}`))
	})

	var data struct {
		Nfts []struct {
			Id string `json:"id"`
		} `json:"nfts"`
	}
	req.NoError(c.AccountResource(bCtx.Background(), "0xABC", domain.MarketResource("0xabc"), &data))
	req.Len(data.Nfts, 1)
	req.Equal("1", data.Nfts[0].Id)
}

func TestApiError(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Resource not found","error_code":"resource_not_found"}`))
	})

	_, err := c.Account(bCtx.Background(), "0x1")
	req.Error(err)
	var apiErr *ApiError
	req.True(errors.As(err, &apiErr))
	req.Equal(http.StatusNotFound, apiErr.StatusCode)
	req.Equal("resource_not_found", apiErr.ErrorCode)
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestSubmitFlow(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/accounts/0x1":
			w.Write([]byte(`{"sequence_number":"7","authentication_key":"0x1"}`))
		case "/v1/transactions/encode_submission":
			got := UnsignedTransaction{}
			req.NoError(json.NewDecoder(r.Body).Decode(&got))
			req.Equal(uint64(7), got.SequenceNumber)
			w.Write([]byte(`"0xb5e97db07fa0bd0e"`))
		case "/v1/transactions":
			got := SignedTransaction{}
			req.NoError(json.NewDecoder(r.Body).Decode(&got))
			req.Equal(Ed25519Signature, got.Signature.Type)
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte(`{"type":"pending_transaction","hash":"0xhash"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := bCtx.Background()

	acc, err := c.Account(ctx, "0x1")
	req.NoError(err)
	req.Equal(uint64(7), acc.SequenceNumber)

	unsigned := &UnsignedTransaction{Sender: "0x1", SequenceNumber: acc.SequenceNumber, Payload: domain.NewPayload("0x1::NFTMarketplace::end_auction", "0x1", "3")}
	msg, err := c.EncodeSubmission(ctx, unsigned)
	req.NoError(err)
	req.Equal([]byte{0xb5, 0xe9, 0x7d, 0xb0, 0x7f, 0xa0, 0xbd, 0x0e}, msg)

	handle, err := c.SubmitTransaction(ctx, &SignedTransaction{UnsignedTransaction: *unsigned, Signature: Signature{Type: Ed25519Signature}})
	req.NoError(err)
	req.Equal(domain.TxHash("0xhash"), handle.Hash)
}

func TestWaitForTransaction(t *testing.T) {
	req := require.New(t)
	var polls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/transactions/by_hash/0xhash", r.URL.Path)
		switch atomic.AddInt32(&polls, 1) {
		case 1:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found","error_code":"transaction_not_found"}`))
		case 2:
			w.Write([]byte(`{"type":"pending_transaction","hash":"0xhash"}`))
		default:
			w.Write([]byte(`{"type":"user_transaction","hash":"0xhash","version":"42","success":false,"vm_status":"Move abort in 0x1::NFTMarketplace: E_BID_TOO_LOW(0x3)","timestamp":"1700000000000000"}`))
		}
	})

	tx, err := c.WaitForTransaction(bCtx.Background(), "0xhash")
	req.NoError(err)
	req.Equal(int32(3), atomic.LoadInt32(&polls))
	req.False(tx.Success)
	req.Equal(uint64(42), tx.Version)
	req.Contains(tx.VmStatus, "E_BID_TOO_LOW")
	req.Equal(int64(1_700_000_000), tx.Timestamp.Unix())
}

func TestWaitForTransactionTimeout(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"pending_transaction","hash":"0xhash"}`))
	})

	ctx, cancel := bCtx.WithTimeout(bCtx.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := c.WaitForTransaction(ctx, "0xhash")
	req.ErrorIs(err, ErrPendingTimeout)
}

func TestLedgerInfo(t *testing.T) {
	req := require.New(t)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1", r.URL.Path)
		w.Write([]byte(`{"chain_id":2,"ledger_version":"99","ledger_timestamp":"1700000000500000"}`))
	})

	info, err := c.LedgerInfo(bCtx.Background())
	req.NoError(err)
	req.Equal(2, info.ChainId)
	req.Equal(uint64(99), info.LedgerVersion)
	req.Equal(time.UnixMicro(1_700_000_000_500_000), info.LedgerTimestamp)
}

func TestThrottledLimitsConcurrency(t *testing.T) {
	req := require.New(t)
	var inflight, peak int32
	c := NewThrottled(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inflight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		w.Write([]byte(`{"chain_id":2,"ledger_version":"1","ledger_timestamp":"1"}`))
	}), 2)

	done := make(chan struct{})
	for i := 0; i < 6; i++ {
		go func() {
			_, err := c.LedgerInfo(bCtx.Background())
			req.NoError(err)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}
	req.LessOrEqual(atomic.LoadInt32(&peak), int32(2))
}
