package services

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerFiresOnlyLastInput(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	d := NewDebouncer(30*time.Millisecond, func(token uint64, query string) {
		mu.Lock()
		queries = append(queries, query)
		mu.Unlock()
	})
	defer d.Stop()

	d.Input("a")
	d.Input("av")
	d.Input("avatar")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 1 {
		t.Fatalf("expected exactly one fire, got %d: %v", len(queries), queries)
	}
	if queries[0] != "avatar" {
		t.Errorf("expected last query to fire, got %q", queries[0])
	}
}

func TestDebouncerSeparatedInputsBothFire(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	d := NewDebouncer(20*time.Millisecond, func(token uint64, query string) {
		mu.Lock()
		queries = append(queries, query)
		mu.Unlock()
	})
	defer d.Stop()

	d.Input("first")
	time.Sleep(100 * time.Millisecond)
	d.Input("second")
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(queries) != 2 {
		t.Fatalf("expected two fires, got %d: %v", len(queries), queries)
	}
}

func TestDebouncerAcceptRejectsStaleToken(t *testing.T) {
	type fired struct {
		token uint64
		query string
	}
	ch := make(chan fired, 2)
	d := NewDebouncer(20*time.Millisecond, func(token uint64, query string) {
		ch <- fired{token, query}
	})
	defer d.Stop()

	d.Input("old")
	first := <-ch
	d.Input("new")
	second := <-ch

	if d.Accept(first.token) {
		t.Error("stale token should be rejected")
	}
	if !d.Accept(second.token) {
		t.Error("latest token should be accepted")
	}
	if second.query != "new" {
		t.Errorf("expected latest query, got %q", second.query)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var (
		mu    sync.Mutex
		count int
	)
	d := NewDebouncer(30*time.Millisecond, func(token uint64, query string) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	d.Input("canceled")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("stopped debouncer should not fire, fired %d times", count)
	}
}
