package cache

import (
	"context"
	"testing"

	"rerank/internal/config"
)

func TestRedis_DisabledBypassesEveryCall(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: false}, nil)
	ctx := context.Background()

	if r.Available() {
		t.Fatalf("disabled cache must not report available")
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatalf("expected ping error on disabled cache")
	}

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	if hit || err != nil {
		t.Fatalf("expected silent miss, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ok, err := r.SetIfNotExists(ctx, "lock", "1", 0)
	if ok || err != nil {
		t.Fatalf("disabled cache must never grant a fill lock")
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.DeleteByPattern(ctx, "rerank:*"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	if r.Available() {
		t.Fatalf("nil cache must not report available")
	}
	if hit, err := r.GetJSON(context.Background(), "k", &struct{}{}); hit || err != nil {
		t.Fatalf("expected silent miss")
	}
}
