package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/state"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func() state.Store {
		return state.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func() state.Store {
		store, err := state.NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("failed to create sqlite store: %v", err)
		}
		return store
	})
}

func runStoreTests(t *testing.T, newStore func() state.Store) {
	t.Run("GetMissing", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, state.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Set(ctx, "k", []byte("v1")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got) != "v1" {
			t.Errorf("expected v1, got %q", got)
		}
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Set(ctx, "k", []byte("v1")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if err := store.Set(ctx, "k", []byte("v2")); err != nil {
			t.Fatalf("overwrite failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(got) != "v2" {
			t.Errorf("expected v2, got %q", got)
		}
	})

	t.Run("Has", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		ok, err := store.Has(ctx, "k")
		if err != nil {
			t.Fatalf("has failed: %v", err)
		}
		if ok {
			t.Error("expected absent key")
		}
		if err := store.Set(ctx, "k", []byte("v")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		ok, err = store.Has(ctx, "k")
		if err != nil {
			t.Fatalf("has failed: %v", err)
		}
		if !ok {
			t.Error("expected present key")
		}
	})
}

func TestStagedStore(t *testing.T) {
	runStoreTests(t, func() state.Store {
		return state.NewStagedStore(state.NewMemoryStore())
	})
}

func TestStagedStoreCommit(t *testing.T) {
	ctx := context.Background()
	base := state.NewMemoryStore()
	staged := state.NewStagedStore(base)

	if err := staged.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := staged.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	// The base sees nothing until commit.
	if _, err := base.Get(ctx, "k"); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in base before commit, got %v", err)
	}
	got, err := staged.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("expected staged v2, got %q, %v", got, err)
	}

	if err := staged.Commit(ctx); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	got, err = base.Get(ctx, "k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("expected base v2 after commit, got %q, %v", got, err)
	}
}

func TestStagedStoreDiscard(t *testing.T) {
	ctx := context.Background()
	base := state.NewMemoryStore()
	if err := base.Set(ctx, "kept", []byte("base")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	staged := state.NewStagedStore(base)

	if err := staged.Set(ctx, "dropped", []byte("staged")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	staged.Discard()

	if _, err := staged.Get(ctx, "dropped"); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected discarded write gone, got %v", err)
	}
	if ok, err := base.Has(ctx, "dropped"); err != nil || ok {
		t.Fatalf("expected base untouched, got %v, %v", ok, err)
	}

	// Base values still read through after a discard.
	got, err := staged.Get(ctx, "kept")
	if err != nil || string(got) != "base" {
		t.Fatalf("expected read-through of base value, got %q, %v", got, err)
	}
}

func TestItem(t *testing.T) {
	ctx := context.Background()
	store := state.NewMemoryStore()

	price := state.NewItem[*uint256.Int]("mint_price")

	if _, err := price.Load(ctx, store); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	want := uint256.NewInt(1_000_000)
	if err := price.Save(ctx, store, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := price.Load(ctx, store)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Errorf("expected %s, got %s", want.Dec(), got.Dec())
	}
}

func TestBoolMap(t *testing.T) {
	ctx := context.Background()
	store := state.NewMemoryStore()

	flags := state.NewBoolMap("is_whitelisted")

	if _, err := flags.Load(ctx, store, "acct1"); !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent flag, got %v", err)
	}

	if err := flags.Save(ctx, store, "acct1", true); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	v, err := flags.Load(ctx, store, "acct1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !v {
		t.Error("expected true flag")
	}

	// Flipping to false keeps the record with a false value rather
	// than deleting it.
	if err := flags.Save(ctx, store, "acct1", false); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	v, err = flags.Load(ctx, store, "acct1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if v {
		t.Error("expected false flag")
	}
}
