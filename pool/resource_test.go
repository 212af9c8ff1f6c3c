package pool_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momentics/hioload-pool/pool"
)

func TestCloseIsIdempotent(t *testing.T) {
	factory, _ := makeFactory()
	p, err := pool.New(factory, 1, quiet[*res]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	idle := p.Stats().Idle
	puts := p.Stats().Puts

	if err := h.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if p.Stats().Idle != idle || p.Stats().Puts != puts {
		t.Error("second Close must not touch the pool")
	}
}

func TestClosedHandleIsInert(t *testing.T) {
	factory, _ := makeFactory()
	p, err := pool.New(factory, 1, quiet[*res]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	h.Close()
	if h.Unwrap() != nil {
		t.Error("Unwrap after Close must return the zero value")
	}
}

func TestWithReleasesOnErrorPath(t *testing.T) {
	factory, _ := makeFactory()
	p, err := pool.New(factory, 1, quiet[*res](), pool.WithTimeout[*res](50*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	boom := errors.New("boom")
	if err := p.With(func(*res) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("With = %v, want the callback error", err)
	}

	// The resource must be back despite the failure.
	h, err := p.Get()
	if err != nil {
		t.Fatalf("Get after failed With: %v", err)
	}
	h.Close()
}

func TestWithPropagatesDepletion(t *testing.T) {
	factory, _ := makeFactory()
	p, err := pool.New(factory, 1, quiet[*res](), pool.WithTimeout[*res](20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer h.Close()

	called := false
	err = p.With(func(*res) error { called = true; return nil })
	if !errors.Is(err, pool.ErrPoolDepleted) {
		t.Fatalf("With = %v, want ErrPoolDepleted", err)
	}
	if called {
		t.Error("callback must not run without a resource")
	}
}
