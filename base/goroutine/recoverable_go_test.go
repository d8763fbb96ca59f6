package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGoPanics(t *testing.T) {
	req := require.New(t)
	var recovered *PanicError

	err := <-RecoverableGo(func() error {
		panic("decoder exploded")
	}, WithName("refresh"), WithOnRecover(func(p *PanicError) {
		recovered = p
	}))

	pe := &PanicError{}
	req.ErrorAs(err, &pe)
	req.Equal("decoder exploded", pe.Value)
	req.NotEmpty(pe.Stack)
	req.Same(pe, recovered)
	req.EqualError(err, "recovered panic: decoder exploded")
}

func TestRecoverableGoReturns(t *testing.T) {
	req := require.New(t)

	err, ok := <-RecoverableGo(func() error { return nil })
	req.False(ok)
	req.NoError(err)

	boom := errors.New("boom")
	ch := RecoverableGo(func() error { return boom })
	req.Equal(boom, <-ch)
	_, ok = <-ch
	req.False(ok)
}
