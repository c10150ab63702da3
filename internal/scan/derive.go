package scan

import "strings"

// NeedsAttention reports whether an item should be routed through the
// labeling interaction. A low-confidence item that a user has since labeled
// is resolved even though its detection type was never rewritten.
func (i Item) NeedsAttention() bool {
	switch i.DetectionType {
	case DetectionContainer, DetectionUnknown:
		return true
	case DetectionLowConfidence:
		return !i.IsUserLabeled
	default:
		return false
	}
}

// Resolved reports whether an item is considered identified, either by the
// detector or by an explicit user label.
func (i Item) Resolved() bool {
	return i.DetectionType == DetectionIdentified || i.IsUserLabeled
}

// UnknownItems returns the items that still need user attention, preserving
// the input order.
func UnknownItems(items []Item) []Item {
	var out []Item
	for _, item := range items {
		if item.NeedsAttention() {
			out = append(out, item)
		}
	}
	return out
}

// IdentifiedItems returns the resolved items, preserving the input order.
func IdentifiedItems(items []Item) []Item {
	var out []Item
	for _, item := range items {
		if item.Resolved() {
			out = append(out, item)
		}
	}
	return out
}

// UnlabeledCount counts items with neither a machine-guessed name nor a user
// label. Distinct from len(UnknownItems): a low-confidence item can carry a
// guessed name yet still need attention.
func UnlabeledCount(items []Item) int {
	count := 0
	for _, item := range items {
		if item.Name == "" && !item.IsUserLabeled {
			count++
		}
	}
	return count
}

// DisplayName resolves a human-readable name for an item. Resolution order:
// detected/labeled name, then the raw user label, then a synthesized
// description of the container, then a literal fallback.
func DisplayName(item Item) string {
	if item.Name != "" {
		return item.Name
	}
	if item.UserLabel != "" {
		return item.UserLabel
	}
	if item.DetectionType == DetectionContainer {
		return "Unknown " + strings.ReplaceAll(string(item.ContainerType), "_", " ")
	}
	if item.ContainerType == ContainerWrapped {
		return "Wrapped Item"
	}
	return "Unknown"
}
