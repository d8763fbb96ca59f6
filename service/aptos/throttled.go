package aptos

import (
	"encoding/json"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
)

// ThrottledClient caps the number of in-flight fullnode requests
type ThrottledClient struct {
	Client
	tokens chan int
}

func NewThrottled(client Client, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		Client: client,
		tokens: tokens,
	}
}

func (c *ThrottledClient) View(ctx bCtx.Ctx, req domain.ViewRequest) ([]json.RawMessage, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.View(ctx, req)
}

func (c *ThrottledClient) AccountResource(ctx bCtx.Ctx, address domain.Address, resourceType string, container interface{}) error {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.AccountResource(ctx, address, resourceType, container)
}

func (c *ThrottledClient) Account(ctx bCtx.Ctx, address domain.Address) (*Account, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.Account(ctx, address)
}

func (c *ThrottledClient) EncodeSubmission(ctx bCtx.Ctx, req *UnsignedTransaction) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.EncodeSubmission(ctx, req)
}

func (c *ThrottledClient) SubmitTransaction(ctx bCtx.Ctx, req *SignedTransaction) (*domain.TxHandle, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.SubmitTransaction(ctx, req)
}

func (c *ThrottledClient) LedgerInfo(ctx bCtx.Ctx) (*domain.LedgerInfo, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.LedgerInfo(ctx)
}

// WaitForTransaction is left to the embedded client: each poll is a plain get
// and no token is held while sleeping between polls.

func (c *ThrottledClient) before(ctx bCtx.Ctx) int {
	now := time.Now()
	select {
	case <-ctx.Done():
		ctx.WithField("wait", time.Since(now)).Debug("throttle ctx done")
		return 0
	case token := <-c.tokens:
		if d := time.Since(now); d > time.Second {
			ctx.WithFields(log.Fields{
				"token": token,
				"len":   len(c.tokens),
				"wait":  d,
			}).Warn("throttle slow")
		}
		return token
	}
}

func (c *ThrottledClient) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
