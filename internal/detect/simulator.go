package detect

import (
	"context"

	"fridgescan/internal/scan"
)

// Detector produces an ordered batch of proto items for a captured image.
type Detector interface {
	Detect(ctx context.Context, imageRef string) ([]scan.Proto, error)
}

// Simulator is a deterministic stand-in for a real detector. It is total
// over its fixed table and never fails.
type Simulator struct{}

// Detect returns the canonical sample batch stamped with imageRef.
func (Simulator) Detect(_ context.Context, imageRef string) ([]scan.Proto, error) {
	return Simulate(imageRef), nil
}

// Simulate returns the fixed five-item detection batch. When imageRef is
// non-empty it is stamped onto every record; otherwise each record keeps its
// fallback icon reference. Items arrive in detection order: three identified,
// one unidentified container, one low-confidence wrapped parcel.
func Simulate(imageRef string) []scan.Proto {
	stamp := func(fallback string) string {
		if imageRef != "" {
			return imageRef
		}
		return fallback
	}

	return []scan.Proto{
		{
			Name:          "Spinach",
			Quantity:      "200g",
			ImageRef:      stamp("assets/ingredient-spinach.png"),
			DetectionType: scan.DetectionIdentified,
			Confidence:    98,
			ContainerType: scan.ContainerNone,
			ContentType:   scan.ContentSolid,
			AISuggestions: []string{},
			Freshness:     scan.FreshnessUseSoon,
			Status:        scan.SeverityGreen,
		},
		{
			Name:          "Whole Milk",
			Quantity:      "1L",
			ImageRef:      stamp("assets/ingredient-milk.png"),
			DetectionType: scan.DetectionIdentified,
			Confidence:    92,
			ContainerType: scan.ContainerBottle,
			ContentType:   scan.ContentLiquid,
			AISuggestions: []string{},
			Freshness:     scan.FreshnessFresh,
			Status:        scan.SeverityGreen,
		},
		{
			// Sealed steel dabba: contents unknown until the user labels it.
			Quantity:      "~500g",
			ImageRef:      stamp("assets/ingredient-chicken.png"),
			DetectionType: scan.DetectionContainer,
			Confidence:    94,
			ContainerType: scan.ContainerSteelDabba,
			ContentType:   scan.ContentUnknown,
			AISuggestions: []string{"Dal", "Dough", "Curd"},
			Freshness:     scan.FreshnessUnknown,
			Status:        scan.SeverityYellow,
		},
		{
			// Wrapped parcel the detector could not identify confidently.
			Quantity:      "~300g",
			ImageRef:      stamp("assets/ingredient-tomatoes.png"),
			DetectionType: scan.DetectionLowConfidence,
			Confidence:    65,
			ContainerType: scan.ContainerWrapped,
			ContentType:   scan.ContentSolid,
			AISuggestions: []string{"Vegetables", "Fruits", "Paneer"},
			Freshness:     scan.FreshnessUnknown,
			Status:        scan.SeverityYellow,
		},
		{
			Name:          "Cheese Block",
			Quantity:      "250g",
			ImageRef:      stamp("assets/ingredient-cheese.png"),
			DetectionType: scan.DetectionIdentified,
			Confidence:    88,
			ContainerType: scan.ContainerNone,
			ContentType:   scan.ContentSolid,
			AISuggestions: []string{},
			Freshness:     scan.FreshnessFresh,
			Status:        scan.SeverityGreen,
		},
	}
}
