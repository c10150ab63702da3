package scan_test

import (
	"testing"

	"fridgescan/internal/scan"
)

func sampleItems() []scan.Item {
	return []scan.Item{
		{ID: "a", Name: "Spinach", DetectionType: scan.DetectionIdentified},
		{ID: "b", Name: "", DetectionType: scan.DetectionContainer, ContainerType: scan.ContainerSteelDabba},
		{ID: "c", Name: "Tomatoes?", DetectionType: scan.DetectionLowConfidence, ContainerType: scan.ContainerWrapped},
		{ID: "d", Name: "", DetectionType: scan.DetectionUnknown},
	}
}

func TestUnknownItemsFilter(t *testing.T) {
	items := sampleItems()
	unknown := scan.UnknownItems(items)
	if len(unknown) != 3 {
		t.Fatalf("expected 3 unknown items, got %d", len(unknown))
	}
	// Stable filter: detection order preserved.
	if unknown[0].ID != "b" || unknown[1].ID != "c" || unknown[2].ID != "d" {
		t.Fatalf("unexpected order: %s %s %s", unknown[0].ID, unknown[1].ID, unknown[2].ID)
	}
}

func TestUserLabeledLowConfidenceResolved(t *testing.T) {
	items := sampleItems()
	// Labeling a low-confidence item resolves it even though a stray update
	// path left detection_type alone; the filter, not the stored field, is
	// the source of truth.
	items[2].IsUserLabeled = true
	items[2].UserLabel = "Tomatoes"

	for _, item := range scan.UnknownItems(items) {
		if item.ID == "c" {
			t.Fatal("user-labeled low-confidence item must not need attention")
		}
	}
	found := false
	for _, item := range scan.IdentifiedItems(items) {
		if item.ID == "c" {
			found = true
		}
	}
	if !found {
		t.Fatal("user-labeled item must be identified")
	}
}

func TestDerivationsDisjoint(t *testing.T) {
	items := sampleItems()
	items[1].IsUserLabeled = true
	items[1].UserLabel = "Dal"
	items[1].DetectionType = scan.DetectionIdentified

	unknown := scan.UnknownItems(items)
	identified := scan.IdentifiedItems(items)

	unknownIDs := make(map[string]struct{}, len(unknown))
	for _, item := range unknown {
		unknownIDs[item.ID] = struct{}{}
	}
	for _, item := range identified {
		if _, clash := unknownIDs[item.ID]; clash {
			t.Fatalf("item %s is both unknown and identified", item.ID)
		}
	}
	for _, item := range items {
		if !item.IsUserLabeled {
			continue
		}
		inIdentified := false
		for _, id := range identified {
			if id.ID == item.ID {
				inIdentified = true
			}
		}
		if !inIdentified {
			t.Fatalf("user-labeled item %s missing from identified set", item.ID)
		}
	}
}

func TestUnlabeledCountDistinctFromUnknown(t *testing.T) {
	items := sampleItems()
	// "c" has a machine-guessed name, so it is unknown but not unlabeled.
	if got := scan.UnlabeledCount(items); got != 2 {
		t.Fatalf("expected 2 unlabeled items, got %d", got)
	}
	if got := len(scan.UnknownItems(items)); got != 3 {
		t.Fatalf("expected 3 unknown items, got %d", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name string
		item scan.Item
		want string
	}{
		{
			name: "detected name wins",
			item: scan.Item{Name: "Spinach", UserLabel: "Palak"},
			want: "Spinach",
		},
		{
			name: "user label when name empty",
			item: scan.Item{UserLabel: "Palak"},
			want: "Palak",
		},
		{
			name: "container synthesizes readable name",
			item: scan.Item{DetectionType: scan.DetectionContainer, ContainerType: scan.ContainerSteelDabba},
			want: "Unknown steel dabba",
		},
		{
			name: "wrapped fallback",
			item: scan.Item{DetectionType: scan.DetectionLowConfidence, ContainerType: scan.ContainerWrapped},
			want: "Wrapped Item",
		},
		{
			name: "bare unknown",
			item: scan.Item{DetectionType: scan.DetectionUnknown},
			want: "Unknown",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scan.DisplayName(tc.item); got != tc.want {
				t.Fatalf("DisplayName = %q, want %q", got, tc.want)
			}
		})
	}
}
