package handlers

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/flow-hydraulics/account-keeper/configs"
	gormstore "github.com/flow-hydraulics/account-keeper/datastore/gorm"
)

func newTestIdempotencyStoreGorm(t *testing.T) *IdempotencyStoreGorm {
	t.Helper()

	db, err := gormstore.New(&configs.Config{
		DatabaseType:            "sqlite",
		DatabaseDSN:             path.Join(t.TempDir(), "test.db"),
		DatabaseConnectAttempts: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { gormstore.Close(db) })

	return NewIdempotencyStoreGorm(db)
}

func countIdempotencyKeys(t *testing.T, g *IdempotencyStoreGorm) int64 {
	t.Helper()

	var count int64
	if err := g.db.Model(&IdempotencyStoreGormItem{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func TestIdempotencyStoreGorm(t *testing.T) {
	g := newTestIdempotencyStoreGorm(t)

	if err := g.Set("expired", -time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := g.Set("live", time.Hour); err != nil {
		t.Fatal(err)
	}

	found, err := g.Get("expired")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected an expired key not to be found")
	}

	if count := countIdempotencyKeys(t, g); count != 2 {
		t.Fatalf("expected 2 stored keys before pruning, got %d", count)
	}

	if err := g.Prune(); err != nil {
		t.Fatal(err)
	}

	if count := countIdempotencyKeys(t, g); count != 1 {
		t.Errorf("expected 1 stored key after pruning, got %d", count)
	}

	found, err = g.Get("live")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("expected a live key to survive pruning")
	}
}

func TestIdempotencyStoreGormPruneEvery(t *testing.T) {
	g := newTestIdempotencyStoreGorm(t)

	if err := g.Set("expired", -time.Minute); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.PruneEvery(ctx, 10*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for countIdempotencyKeys(t, g) != 0 {
		if time.Now().After(deadline) {
			cancel()
			<-done
			t.Fatal("expected the expired key to be pruned")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("expected PruneEvery to return once its context is done")
	}
}
