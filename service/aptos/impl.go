package aptos

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketclient/base/backoff"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultPollLimit    = 5 * time.Second
)

func NewClient(cfg *ClientCfg) Client {
	pollInterval, pollLimit := cfg.PollInterval, cfg.PollLimit
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if pollLimit <= 0 {
		pollLimit = defaultPollLimit
	}
	return &client{
		client:       cfg.HttpClient,
		api:          strings.TrimRight(cfg.Endpoint, "/") + "/v1",
		timeout:      cfg.Timeout,
		pollInterval: pollInterval,
		pollLimit:    pollLimit,
	}
}

type client struct {
	client       http.Client
	api          string
	timeout      time.Duration
	pollInterval time.Duration
	pollLimit    time.Duration
}

func (c *client) View(ctx bCtx.Ctx, req domain.ViewRequest) ([]json.RawMessage, error) {
	if req.TypeArguments == nil {
		req.TypeArguments = []string{}
	}
	if req.Arguments == nil {
		req.Arguments = []interface{}{}
	}
	res := []json.RawMessage{}
	if err := c.post(ctx, "/view", req, &res); err != nil {
		ctx.WithFields(log.Fields{
			"function": req.Function,
			"err":      err,
		}).Error("c.post failed")
		return nil, err
	}
	return res, nil
}

func (c *client) AccountResource(ctx bCtx.Ctx, address domain.Address, resourceType string, container interface{}) error {
	path := fmt.Sprintf("/accounts/%s/resource/%s", address.ToLowerStr(), url.PathEscape(resourceType))
	res := resource{}
	if err := c.get(ctx, path, &res); err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"type":    resourceType,
			"err":     err,
		}).Error("c.get failed")
		return err
	}
	if err := json.Unmarshal(res.Data, container); err != nil {
		ctx.WithFields(log.Fields{
			"type": resourceType,
			"err":  err,
		}).Error("json.Unmarshal failed")
		return &domain.DecodeError{Field: resourceType, Err: err}
	}
	return nil
}

func (c *client) Account(ctx bCtx.Ctx, address domain.Address) (*Account, error) {
	res := &Account{}
	if err := c.get(ctx, "/accounts/"+address.ToLowerStr(), res); err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("c.get failed")
		return nil, err
	}
	return res, nil
}

func (c *client) EncodeSubmission(ctx bCtx.Ctx, req *UnsignedTransaction) ([]byte, error) {
	var encoded string
	if err := c.post(ctx, "/transactions/encode_submission", req, &encoded); err != nil {
		ctx.WithFields(log.Fields{
			"function": req.Payload.Function,
			"err":      err,
		}).Error("c.post failed")
		return nil, err
	}
	msg, err := hexutil.Decode(encoded)
	if err != nil {
		ctx.WithField("err", err).Error("hexutil.Decode failed")
		return nil, xerrors.Errorf("decode signing message: %w", err)
	}
	return msg, nil
}

func (c *client) SubmitTransaction(ctx bCtx.Ctx, req *SignedTransaction) (*domain.TxHandle, error) {
	res := &transaction{}
	if err := c.post(ctx, "/transactions", req, res); err != nil {
		ctx.WithFields(log.Fields{
			"function": req.Payload.Function,
			"err":      err,
		}).Error("c.post failed")
		return nil, err
	}
	return &domain.TxHandle{Hash: domain.TxHash(res.Hash)}, nil
}

// WaitForTransaction polls until the transaction leaves the mempool. It
// returns ErrPendingTimeout wrapped with the context error when ctx ends first.
func (c *client) WaitForTransaction(ctx bCtx.Ctx, hash domain.TxHash) (*domain.Transaction, error) {
	b := backoff.NewExponential(c.pollInterval, c.pollLimit)
	for {
		res := &transaction{}
		err := c.get(ctx, "/transactions/by_hash/"+string(hash), res)
		switch {
		case err == nil && res.Type != typePending:
			return &domain.Transaction{
				Hash:      domain.TxHash(res.Hash),
				Version:   res.Version,
				Success:   res.Success,
				VmStatus:  res.VmStatus,
				Timestamp: time.UnixMicro(res.Timestamp),
			}, nil
		case err == nil, errors.Is(err, domain.ErrNotFound):
			// not committed yet
		case ctx.Err() != nil:
			return nil, xerrors.Errorf("%w: %v", ErrPendingTimeout, ctx.Err())
		default:
			ctx.WithFields(log.Fields{
				"hash": hash,
				"err":  err,
			}).Warn("c.get failed, retrying")
		}
		if err := b.Backoff(ctx); err != nil {
			return nil, xerrors.Errorf("%w: %v", ErrPendingTimeout, err)
		}
	}
}

func (c *client) LedgerInfo(ctx bCtx.Ctx) (*domain.LedgerInfo, error) {
	res := &ledgerInfo{}
	if err := c.get(ctx, "", res); err != nil {
		ctx.WithField("err", err).Error("c.get failed")
		return nil, err
	}
	return &domain.LedgerInfo{
		ChainId:         res.ChainId,
		LedgerVersion:   res.LedgerVersion,
		LedgerTimestamp: time.UnixMicro(res.LedgerTimestamp),
	}, nil
}

func (c *client) get(ctx bCtx.Ctx, path string, container interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, container)
}

func (c *client) post(ctx bCtx.Ctx, path string, body interface{}, container interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), container)
}

func (c *client) do(ctx bCtx.Ctx, method, path string, body io.Reader, container interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	url := c.api + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("http.NewRequest failed")
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &ApiError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}
	if container == nil {
		return nil
	}
	if err := json.Unmarshal(data, container); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
