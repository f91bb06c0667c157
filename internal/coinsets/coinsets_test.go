package coinsets

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"slices"
)

func TestNewRegistryHasBuiltinSystems(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	got, err := registry.Get("usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultDenominations()
	if !slices.Equal(got, want) {
		t.Fatalf("expected default denominations %v, got %v", want, got)
	}

	// ensure mutation safety
	got[0] = 999
	again, err := registry.Get("usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices.Equal(again, got) {
		t.Fatalf("expected defensive copy, got %v", again)
	}
}

func TestGetUnknownSystem(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if _, err := registry.Get("doubloons"); !errors.Is(err, ErrUnknownSystem) {
		t.Fatalf("expected ErrUnknownSystem, got %v", err)
	}
}

func TestRegisterUpdatesState(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register("gbp", []int{200, 1, 50, 50, 2, 5, 10, 20, 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := registry.Get("gbp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 2, 5, 10, 20, 50, 100, 200}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if !slices.Contains(registry.Names(), "gbp") {
		t.Fatalf("expected gbp in names, got %v", registry.Names())
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := [][]int{
		nil,
		{},
		{0, 10},
		{-5, 100},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			registry := NewRegistry()
			if err := registry.Register("bad", tc); !errors.Is(err, ErrInvalidSet) {
				t.Fatalf("expected ErrInvalidSet for %v, got %v", tc, err)
			}
		})
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			if err := registry.Register("custom", []int{1 + offset, 5 + offset}); err != nil {
				t.Errorf("Register failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := registry.Get("usd"); err != nil {
				t.Errorf("Get failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if _, err := registry.Get("custom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
