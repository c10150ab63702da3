package suggest

import (
	"strings"

	"fridgescan/internal/scan"
)

// UnknownSentinel is returned as the sole suggestion for container types the
// catalog does not recognize. Callers extending the catalog must keep this
// fallback intact.
const UnknownSentinel = "Unknown Item"

// Staple is a quick-pick label for the most common labeled containers.
type Staple struct {
	ID    string
	Label string
}

// CommonStaples lists the quick-selection labels surfaced before free-text
// entry.
var CommonStaples = []Staple{
	{ID: "gg_paste", Label: "G-G Paste"},
	{ID: "chutney", Label: "Chutney"},
	{ID: "leftovers", Label: "Leftovers"},
	{ID: "masala", Label: "Masala"},
	{ID: "milk", Label: "Milk"},
	{ID: "pickle", Label: "Pickle"},
	{ID: "dal", Label: "Dal"},
	{ID: "curd", Label: "Curd"},
	{ID: "dough", Label: "Dough"},
}

// Catalog resolves candidate labels for a container/content pair. The zero
// value uses the built-in tables; extras from configuration are appended
// after the built-ins so the canonical suggestions keep their ordering.
type Catalog struct {
	extras map[scan.ContainerType][]string
}

// NewCatalog builds a catalog with per-container extensions. Keys that do not
// parse as known container types are dropped; empty or whitespace labels are
// dropped.
func NewCatalog(extras map[string][]string) *Catalog {
	catalog := &Catalog{}
	for key, labels := range extras {
		containerType, ok := scan.ParseContainerType(key)
		if !ok {
			continue
		}
		for _, label := range labels {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			if catalog.extras == nil {
				catalog.extras = make(map[scan.ContainerType][]string)
			}
			catalog.extras[containerType] = append(catalog.extras[containerType], label)
		}
	}
	return catalog
}

// Candidates returns the ordered suggestion list for a container type,
// refined by content type where the tables branch on it.
func (c *Catalog) Candidates(containerType scan.ContainerType, contentType scan.ContentType) []string {
	base := baseCandidates(containerType, contentType)
	if c == nil || len(c.extras[containerType]) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(c.extras[containerType]))
	out = append(out, base...)
	out = append(out, c.extras[containerType]...)
	return out
}

func baseCandidates(containerType scan.ContainerType, contentType scan.ContentType) []string {
	switch containerType {
	case scan.ContainerSteelDabba, scan.ContainerTiffin:
		return []string{"Dal", "Dough", "Curd", "Leftovers", "Rice", "Sabzi"}
	case scan.ContainerTupperware:
		return []string{"Curry", "Curd", "Salad", "Leftovers", "Fruits"}
	case scan.ContainerJar:
		if contentType == scan.ContentLiquid {
			return []string{"Pickle", "Chutney", "Oil", "Ghee"}
		}
		return []string{"Masala", "Spices", "Dry Fruits", "Sugar"}
	case scan.ContainerBottle:
		return []string{"Milk", "Buttermilk", "Water", "Juice", "Oil"}
	case scan.ContainerWrapped, scan.ContainerPolythene:
		return []string{"Vegetables", "Fruits", "Paneer", "Bread", "Cheese"}
	case scan.ContainerFoil:
		return []string{"Roti", "Paratha", "Cooked Food", "Snacks"}
	default:
		return []string{UnknownSentinel}
	}
}
