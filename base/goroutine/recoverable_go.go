package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/x-xyz/marketclient/base/log"
)

// PanicError is what a recovered goroutine reports instead of crashing
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

type options struct {
	name      string
	onRecover func(p *PanicError)
}

type Option func(*options)

// WithName tags the panic log line
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithOnRecover(f func(p *PanicError)) Option {
	return func(o *options) {
		o.onRecover = f
	}
}

// RecoverableGo runs f in a goroutine. The channel yields f's error, or a
// *PanicError if f panicked, and is closed afterwards. A nil result is
// delivered as a closed channel.
func RecoverableGo(f func() error, opts ...Option) <-chan error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			pe := &PanicError{Value: p, Stack: debug.Stack()}
			log.Log().WithFields(log.Fields{
				"err":   p,
				"name":  o.name,
				"stack": string(pe.Stack),
			}).Error("panic")
			if o.onRecover != nil {
				o.onRecover(pe)
			}
			errCh <- pe
		}()

		if err := f(); err != nil {
			errCh <- err
		}
	}()
	return errCh
}
