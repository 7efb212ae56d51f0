package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle tracks the goroutines of a running app so that Stop can cancel
// them and wait until all of them returned.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(parent context.Context) *Lifecycle {
	ctx, cancel := context.WithCancel(parent)
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

// Go runs fn in a new goroutine. The context passed to fn is cancelled by Stop.
func (lc *Lifecycle) Go(fn func(ctx context.Context)) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		fn(lc.ctx)
	}()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Done() <-chan struct{} {
	return lc.ctx.Done()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
