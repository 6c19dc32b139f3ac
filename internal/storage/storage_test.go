package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if err := store.SetItem(ctx, "k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "v" {
		t.Errorf("value = %q, want v", v)
	}
}

func TestMemStoreMissingKey(t *testing.T) {
	store := NewMemStore()
	_, err := store.GetItem(context.Background(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemStoreRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	store.SetItem(ctx, "a", "1")
	store.SetItem(ctx, "b", "2")

	store.RemoveItem(ctx, "a")
	if _, err := store.GetItem(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after remove = %v, want ErrNotFound", err)
	}

	store.Clear(ctx)
	if _, err := store.GetItem(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after clear = %v, want ErrNotFound", err)
	}
}

// failStore always errors, to exercise the logged-not-thrown contract.
type failStore struct{}

func (failStore) GetItem(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}
func (failStore) SetItem(context.Context, string, string) error { return errors.New("disk on fire") }
func (failStore) RemoveItem(context.Context, string) error      { return errors.New("disk on fire") }
func (failStore) Clear(context.Context) error                   { return errors.New("disk on fire") }

func TestNamespacePrefixesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	ns := NewNamespace(store, "onboarding:")

	ns.Set(ctx, "u1", "true")

	v, err := store.GetItem(ctx, "onboarding:u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "true" {
		t.Errorf("value = %q, want true", v)
	}

	got, ok := ns.Get(ctx, "u1")
	if !ok || got != "true" {
		t.Errorf("Get = (%q, %v), want (true, true)", got, ok)
	}
}

func TestNamespaceMissingKeyIsNotAnError(t *testing.T) {
	ns := NewNamespace(NewMemStore(), "onboarding:")
	v, ok := ns.Get(context.Background(), "absent")
	if ok || v != "" {
		t.Errorf("Get = (%q, %v), want zero values", v, ok)
	}
}

func TestNamespaceSwallowsStorageFailures(t *testing.T) {
	ctx := context.Background()
	ns := NewNamespace(failStore{}, "onboarding:")

	// None of these may panic or surface the error.
	ns.Set(ctx, "u1", "true")
	ns.Remove(ctx, "u1")
	if v, ok := ns.Get(ctx, "u1"); ok || v != "" {
		t.Errorf("Get = (%q, %v), want zero values on failure", v, ok)
	}
}
