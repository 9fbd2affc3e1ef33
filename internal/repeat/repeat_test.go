package repeat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestStart_StopsWithContextCancelled(t *testing.T) {
	done := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	var once int32
	Start(ctx, 5*time.Second, func(context.Context) {
		if atomic.CompareAndSwapInt32(&once, 0, 1) {
			close(done)
		}
	})
	<-done
	cancel()

	assert.Assert(t, time.Since(start) < time.Second)
}

func TestStart_RunsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan struct{}, 1)
	Start(ctx, time.Hour, func(context.Context) {
		called <- struct{}{}
	})

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected run to be called immediately")
	}
}
