package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
)

func testLayout() *layout.Layout {
	return &layout.Layout{
		Width:    800,
		Height:   600,
		Interior: layout.Region{X: 60, Y: 0, Width: 740, Height: 550},
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := NewDocument("revenue", "[canvas]\nwidth = 800\n", testLayout())
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Fatal("Put should keep the assigned ID")
	}

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "revenue" {
		t.Errorf("Name = %q, want %q", got.Name, "revenue")
	}
	if got.Layout == nil || got.Layout.Width != 800 {
		t.Error("layout not round-tripped")
	}
}

func TestMemoryStorePutAssignsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := &Document{Name: "unnamed"}
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Error("Put should assign an ID to a zero-ID document")
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Error("Put should set timestamps")
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for missing document")
	}
	if errors.GetCode(err) != errors.ErrCodeLayoutNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeLayoutNotFound)
	}
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, NewDocument(name, "", testLayout())); err != nil {
			t.Fatalf("Put %s: %v", name, err)
		}
	}

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3", len(docs))
	}
	for i := 1; i < len(docs); i++ {
		if docs[i].CreatedAt.After(docs[i-1].CreatedAt) {
			t.Error("List should order newest first")
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := NewDocument("doomed", "", testLayout())
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := s.Get(ctx, doc.ID); err == nil {
		t.Error("expected error after delete")
	}
	if err := s.Delete(ctx, doc.ID); errors.GetCode(err) != errors.ErrCodeLayoutNotFound {
		t.Errorf("second delete code = %v, want %v", errors.GetCode(err), errors.ErrCodeLayoutNotFound)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	doc := NewDocument("orig", "", testLayout())
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's copy must not affect the stored document.
	doc.Name = "mutated"

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "orig" {
		t.Errorf("Name = %q, want %q", got.Name, "orig")
	}
}
