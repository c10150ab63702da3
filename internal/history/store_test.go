package history_test

import (
	"context"
	"testing"
	"time"

	"fridgescan/internal/scan"
	"fridgescan/internal/session"
	"fridgescan/internal/testsupport"
)

func archivedState() session.State {
	startedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return session.State{
		IsActive:       true,
		StartedAt:      &startedAt,
		SourceImageRef: "captures/shelf-1.jpg",
		Items: []scan.Item{
			{
				ID:            "item-1",
				Name:          "Spinach",
				Quantity:      "200g",
				ImageRef:      "captures/shelf-1.jpg",
				DetectionType: scan.DetectionIdentified,
				Confidence:    98,
				ContainerType: scan.ContainerNone,
				ContentType:   scan.ContentSolid,
				Freshness:     scan.FreshnessUseSoon,
				Status:        scan.SeverityGreen,
			},
			{
				ID:            "item-2",
				Name:          "Dal",
				Quantity:      "~500g",
				ImageRef:      "captures/shelf-1.jpg",
				DetectionType: scan.DetectionIdentified,
				Confidence:    94,
				ContainerType: scan.ContainerSteelDabba,
				ContentType:   scan.ContentUnknown,
				IsUserLabeled: true,
				UserLabel:     "Dal",
				Freshness:     scan.FreshnessUnknown,
				Status:        scan.SeverityYellow,
			},
			{
				ID:            "item-3",
				Quantity:      "~300g",
				ImageRef:      "captures/shelf-1.jpg",
				DetectionType: scan.DetectionLowConfidence,
				Confidence:    65,
				ContainerType: scan.ContainerWrapped,
				ContentType:   scan.ContentSolid,
				Freshness:     scan.FreshnessUnknown,
				Status:        scan.SeverityYellow,
			},
		},
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	id, err := store.Archive(ctx, archivedState())
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero archive id")
	}

	record, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record == nil {
		t.Fatal("expected archived record")
	}
	if record.ItemCount != 3 || record.IdentifiedCount != 2 || record.UnknownCount != 1 {
		t.Fatalf("unexpected counts: %+v", record)
	}
	if record.SourceImageRef != "captures/shelf-1.jpg" {
		t.Fatalf("unexpected source image: %q", record.SourceImageRef)
	}
	if record.StartedAt == nil || !record.StartedAt.Equal(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected started-at: %v", record.StartedAt)
	}
	if record.CommittedAt.IsZero() {
		t.Fatal("expected committed-at timestamp")
	}

	items, err := store.Items(ctx, id)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != "item-1" || items[1].ID != "item-2" || items[2].ID != "item-3" {
		t.Fatalf("detection order not preserved: %+v", items)
	}
	if !items[1].IsUserLabeled || items[1].UserLabel != "Dal" {
		t.Fatalf("labeled item not round-tripped: %+v", items[1])
	}
	if items[2].Name != "" {
		t.Fatalf("expected empty name preserved, got %q", items[2].Name)
	}
}

func TestArchiveRejectsEmptySession(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	if _, err := store.Archive(context.Background(), session.State{}); err == nil {
		t.Fatal("expected error archiving an empty session")
	}
}

func TestListNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	first, err := store.Archive(ctx, archivedState())
	if err != nil {
		t.Fatalf("archive first: %v", err)
	}
	second, err := store.Archive(ctx, archivedState())
	if err != nil {
		t.Fatalf("archive second: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != second || records[1].ID != first {
		t.Fatalf("expected newest first, got %d then %d", records[0].ID, records[1].ID)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	record, err := store.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil for missing id, got %+v", record)
	}
}

func TestClearRemovesArchive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	id, err := store.Archive(ctx, archivedState())
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 session removed, got %d", removed)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty archive, got %d records", len(records))
	}
	items, err := store.Items(ctx, id)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected items removed, got %d", len(items))
	}
}
