package pool_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-pool/fake"
	"github.com/momentics/hioload-pool/pool"
)

func TestFactoryErrorPropagates(t *testing.T) {
	f := &fake.Factory{}
	f.FailWith(errors.New("dial refused"))

	p, err := pool.New(f.New, 1, quiet[*fake.Resource]())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := p.Get(); err == nil {
		t.Fatal("Get must surface the factory error")
	}
	if p.Size() != 0 {
		t.Errorf("size = %d after failed creation, want 0", p.Size())
	}

	// The scripted error is consumed; the next acquisition succeeds.
	h, err := p.Get()
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	defer h.Close()
	if f.Created.Load() != 1 {
		t.Errorf("created = %d, want 1", f.Created.Load())
	}
}

func TestHooksAreInvokedPerCheckout(t *testing.T) {
	f := &fake.Factory{}
	hooks := &fake.Hooks{}

	p, err := pool.New(f.New, 1,
		quiet[*fake.Resource](),
		pool.WithPing[*fake.Resource](hooks.Ping),
		pool.WithNormalize[*fake.Resource](hooks.Normalize),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		h, err := p.Get()
		if err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
		h.Close()
	}

	if hooks.Pings.Load() != 3 || hooks.Normalizes.Load() != 3 {
		t.Errorf("pings/normalizes = %d/%d, want 3/3",
			hooks.Pings.Load(), hooks.Normalizes.Load())
	}
	if f.Created.Load() != 1 {
		t.Errorf("created = %d, reuse expected", f.Created.Load())
	}
}
