package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "rsvp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	guests := []models.Guest{
		{FirstName: "Ana", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuVegetarian},
		{FirstName: "Ion", LastName: "Pop", AgeCategory: models.AgeChild, Menu: models.MenuMeat},
		{FirstName: "Zoe", LastName: "Pop", AgeCategory: models.AgeAdult, Menu: models.MenuMeat},
	}

	t.Run("CreateResponse generates ID and timestamp", func(t *testing.T) {
		resp := &models.Response{Guests: guests}
		if err := store.CreateResponse(ctx, resp); err != nil {
			t.Fatalf("CreateResponse failed: %v", err)
		}
		if resp.ID == "" {
			t.Error("Expected response ID to be generated")
		}
		if resp.ReceivedAt == 0 {
			t.Error("Expected ReceivedAt to be set")
		}
	})

	t.Run("GetResponse keeps roster order", func(t *testing.T) {
		original := &models.Response{ID: "fixed-id", ReceivedAt: 42, Guests: guests}
		if err := store.CreateResponse(ctx, original); err != nil {
			t.Fatalf("CreateResponse failed: %v", err)
		}

		got, err := store.GetResponse(ctx, "fixed-id")
		if err != nil {
			t.Fatalf("GetResponse failed: %v", err)
		}
		if !reflect.DeepEqual(got, original) {
			t.Errorf("GetResponse = %+v, want %+v", got, original)
		}
	})

	t.Run("GetResponse not found", func(t *testing.T) {
		_, err := store.GetResponse(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListResponses oldest first", func(t *testing.T) {
		list, err := store.ListResponses(ctx)
		if err != nil {
			t.Fatalf("ListResponses failed: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("len = %d, want 2", len(list))
		}
		if list[0].ID != "fixed-id" {
			t.Errorf("first response = %s, want fixed-id (oldest)", list[0].ID)
		}
		for _, r := range list {
			if len(r.Guests) != 3 {
				t.Errorf("response %s has %d guests, want 3", r.ID, len(r.Guests))
			}
		}
	})

	t.Run("duplicate ID fails", func(t *testing.T) {
		err := store.CreateResponse(ctx, &models.Response{ID: "fixed-id", Guests: guests})
		if err == nil {
			t.Error("expected error for duplicate ID")
		}
	})
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sheet.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.CreateResponse(context.Background(), &models.Response{ID: "a", Guests: []models.Guest{{FirstName: "A", LastName: "B"}}}); err != nil {
		t.Fatalf("CreateResponse failed: %v", err)
	}
	store.Close()

	store, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if _, err := store.GetResponse(context.Background(), "a"); err != nil {
		t.Errorf("GetResponse after reopen: %v", err)
	}
}
