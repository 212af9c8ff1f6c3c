package queue_test

import (
	"testing"
	"time"

	"github.com/momentics/hioload-pool/internal/queue"
)

func TestTryPushRespectsBound(t *testing.T) {
	q := queue.NewBlocking[int](2)
	if !q.TryPush(1) || !q.TryPush(2) {
		t.Fatal("pushes under the bound must succeed")
	}
	if q.TryPush(3) {
		t.Error("push beyond the bound must fail")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}

func TestPopOrderIsFIFO(t *testing.T) {
	q := queue.NewBlocking[int](3)
	for _, v := range []int{10, 20, 30} {
		q.TryPush(v)
	}
	for _, want := range []int{10, 20, 30} {
		got, ok := q.TryPop()
		if !ok || got != want {
			t.Fatalf("TryPop = %d,%v, want %d,true", got, ok, want)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Error("TryPop on empty queue must fail")
	}
}

func TestPopTimesOut(t *testing.T) {
	q := queue.NewBlocking[int](1)
	start := time.Now()
	_, ok := q.Pop(50 * time.Millisecond)
	if ok {
		t.Fatal("Pop on empty queue must time out")
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("Pop returned after %s, before the timeout", elapsed)
	}
}

func TestPopZeroTimeoutFailsFast(t *testing.T) {
	q := queue.NewBlocking[int](1)
	start := time.Now()
	if _, ok := q.Pop(0); ok {
		t.Fatal("Pop(0) on empty queue must fail")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Pop(0) took %s, expected an immediate return", elapsed)
	}
}

func TestPopWakesOnPush(t *testing.T) {
	q := queue.NewBlocking[int](1)
	go func() {
		time.Sleep(20 * time.Millisecond)
		q.TryPush(7)
	}()
	v, ok := q.Pop(2 * time.Second)
	if !ok || v != 7 {
		t.Fatalf("Pop = %d,%v, want 7,true", v, ok)
	}
}

// Two parked waiters and two pushes: the chain re-signal must serve both,
// even when the second push's wakeup is coalesced into the first.
func TestConcurrentWaitersAllServed(t *testing.T) {
	q := queue.NewBlocking[int](2)
	results := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, ok := q.Pop(2 * time.Second)
			results <- ok
		}()
	}
	time.Sleep(20 * time.Millisecond)
	q.TryPush(1)
	q.TryPush(2)
	for i := 0; i < 2; i++ {
		if !<-results {
			t.Fatal("a waiter timed out despite available items")
		}
	}
}
