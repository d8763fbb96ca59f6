package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/service/cache/provider"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type failing struct {
	provider.Provider
}

func (failing) Get(ctx.Ctx, string) ([]byte, time.Duration, error) {
	return nil, 0, errors.New("down")
}

type testsuite struct {
	suite.Suite
	front provider.Provider
	back  provider.Provider
	im    provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.front = primitive.NewPrimitive("front", 1)
	ts.back = primitive.NewPrimitive("back", 1)
	ts.im = NewCompound(ts.front, ts.back)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetWritesEveryLayer() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	for _, lyr := range []provider.Provider{ts.front, ts.back} {
		val, _, err := lyr.Get(mockCtx, "key")
		ts.NoError(err)
		ts.Equal([]byte("value"), val)
	}
}

func (ts *testsuite) TestGetFillsFront() {
	ts.NoError(ts.back.Set(mockCtx, "key", []byte("value"), time.Minute))
	_, _, err := ts.front.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)

	val, _, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)

	val, _, err = ts.front.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
}

func (ts *testsuite) TestMissAndDel() {
	_, _, err := ts.im.Get(mockCtx, "nope")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 0))
	ts.Equal(int64(1), ts.im.Len())
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, err = ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
	ts.Equal(int64(0), ts.im.Len())
}

func (ts *testsuite) TestLayerError() {
	im := NewCompound(failing{ts.front}, ts.back)
	_, _, err := im.Get(mockCtx, "key")
	ts.EqualError(err, "down")
}
