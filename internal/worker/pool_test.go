package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsEveryTaskAndReportsErrors(t *testing.T) {
	p := NewPool(2, 8)
	results := p.Run(context.Background())

	var ran atomic.Int32
	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		if err := p.Submit("ok", func(context.Context) error {
			ran.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if err := p.Submit("fail", func(context.Context) error { return boom }); err != nil {
		t.Fatalf("submit: %v", err)
	}
	p.Close()

	var failed int
	var total int
	for r := range results {
		total++
		if r.Err != nil {
			if r.Name != "fail" || !errors.Is(r.Err, boom) {
				t.Fatalf("unexpected failure %+v", r)
			}
			failed++
		}
	}
	if total != 6 || failed != 1 || ran.Load() != 5 {
		t.Fatalf("total=%d failed=%d ran=%d", total, failed, ran.Load())
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := NewPool(1, 1)
	p.Close()
	p.Close()
	if err := p.Submit("late", func(context.Context) error { return nil }); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestPool_StopsOnContextCancel(t *testing.T) {
	p := NewPool(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	results := p.Run(ctx)
	cancel()

	select {
	case _, ok := <-results:
		if ok {
			t.Fatalf("expected closed results channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop")
	}
}
