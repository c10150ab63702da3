package scan

import "strings"

// DetectionType classifies how an item's identity was determined.
type DetectionType string

const (
	DetectionIdentified    DetectionType = "identified"
	DetectionLowConfidence DetectionType = "low_confidence"
	DetectionContainer     DetectionType = "container"
	DetectionUnknown       DetectionType = "unknown"
)

var allDetectionTypes = []DetectionType{
	DetectionIdentified,
	DetectionLowConfidence,
	DetectionContainer,
	DetectionUnknown,
}

var detectionTypeSet = func() map[DetectionType]struct{} {
	set := make(map[DetectionType]struct{}, len(allDetectionTypes))
	for _, dt := range allDetectionTypes {
		set[dt] = struct{}{}
	}
	return set
}()

// ContainerType describes the physical packaging of an item. It drives which
// candidate labels are suggested for unidentified containers.
type ContainerType string

const (
	ContainerSteelDabba ContainerType = "steel_dabba"
	ContainerTupperware ContainerType = "tupperware"
	ContainerWrapped    ContainerType = "wrapped"
	ContainerBottle     ContainerType = "bottle"
	ContainerJar        ContainerType = "jar"
	ContainerPolythene  ContainerType = "polythene"
	ContainerFoil       ContainerType = "foil"
	ContainerTiffin     ContainerType = "tiffin"
	ContainerNone       ContainerType = "none"
)

var allContainerTypes = []ContainerType{
	ContainerSteelDabba,
	ContainerTupperware,
	ContainerWrapped,
	ContainerBottle,
	ContainerJar,
	ContainerPolythene,
	ContainerFoil,
	ContainerTiffin,
	ContainerNone,
}

var containerTypeSet = func() map[ContainerType]struct{} {
	set := make(map[ContainerType]struct{}, len(allContainerTypes))
	for _, ct := range allContainerTypes {
		set[ct] = struct{}{}
	}
	return set
}()

// ContentType is a coarse physical-state hint for sealed containers.
type ContentType string

const (
	ContentLiquid    ContentType = "liquid"
	ContentSolid     ContentType = "solid"
	ContentSemiSolid ContentType = "semi-solid"
	ContentUnknown   ContentType = "unknown"
)

// Freshness is a shelf-life hint, independent of labeling state.
type Freshness string

const (
	FreshnessFresh   Freshness = "fresh"
	FreshnessUseSoon Freshness = "use-soon"
	FreshnessExpired Freshness = "expired"
	FreshnessFrozen  Freshness = "frozen"
	FreshnessUnknown Freshness = "unknown"
)

// Severity is the visual status indicator assigned once at detection time.
// It is not recomputed from freshness or confidence afterwards.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
)

// Item is one detected or manually-added object in a scan session.
//
// Invariant: IsUserLabeled == true implies UserLabel is non-empty and
// DetectionType == DetectionIdentified. The reverse does not hold: the
// detector may emit DetectionIdentified items that no user has confirmed.
type Item struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Quantity      string        `json:"quantity"`
	ImageRef      string        `json:"image"`
	DetectionType DetectionType `json:"detection_type"`
	Confidence    int           `json:"confidence"`
	ContainerType ContainerType `json:"container_type"`
	ContentType   ContentType   `json:"content_type"`
	IsUserLabeled bool          `json:"is_user_labeled"`
	AISuggestions []string      `json:"ai_suggestions"`
	UserLabel     string        `json:"user_label,omitempty"`
	Freshness     Freshness     `json:"freshness"`
	Status        Severity      `json:"status"`
}

// Proto is an Item without an identifier, as produced by a detector. The
// session store assigns the id when the proto is admitted.
type Proto struct {
	Name          string
	Quantity      string
	ImageRef      string
	DetectionType DetectionType
	Confidence    int
	ContainerType ContainerType
	ContentType   ContentType
	AISuggestions []string
	Freshness     Freshness
	Status        Severity
}

// Item materializes the proto with the given id. Suggestion slices are copied
// so the proto table cannot be mutated through the session.
func (p Proto) Item(id string) Item {
	suggestions := make([]string, len(p.AISuggestions))
	copy(suggestions, p.AISuggestions)
	return Item{
		ID:            id,
		Name:          p.Name,
		Quantity:      p.Quantity,
		ImageRef:      p.ImageRef,
		DetectionType: p.DetectionType,
		Confidence:    p.Confidence,
		ContainerType: p.ContainerType,
		ContentType:   p.ContentType,
		AISuggestions: suggestions,
		Freshness:     p.Freshness,
		Status:        p.Status,
	}
}

// Patch carries partial field updates for an existing item. Nil fields are
// left untouched.
type Patch struct {
	Name          *string
	Quantity      *string
	ImageRef      *string
	DetectionType *DetectionType
	Confidence    *int
	ContainerType *ContainerType
	ContentType   *ContentType
	IsUserLabeled *bool
	AISuggestions *[]string
	UserLabel     *string
	Freshness     *Freshness
	Status        *Severity
}

// Apply copies the patch's set fields onto the item.
func (p Patch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.ImageRef != nil {
		item.ImageRef = *p.ImageRef
	}
	if p.DetectionType != nil {
		item.DetectionType = *p.DetectionType
	}
	if p.Confidence != nil {
		item.Confidence = *p.Confidence
	}
	if p.ContainerType != nil {
		item.ContainerType = *p.ContainerType
	}
	if p.ContentType != nil {
		item.ContentType = *p.ContentType
	}
	if p.IsUserLabeled != nil {
		item.IsUserLabeled = *p.IsUserLabeled
	}
	if p.AISuggestions != nil {
		suggestions := make([]string, len(*p.AISuggestions))
		copy(suggestions, *p.AISuggestions)
		item.AISuggestions = suggestions
	}
	if p.UserLabel != nil {
		item.UserLabel = *p.UserLabel
	}
	if p.Freshness != nil {
		item.Freshness = *p.Freshness
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
}

// AllDetectionTypes returns the ordered list of known detection types.
func AllDetectionTypes() []DetectionType {
	cp := make([]DetectionType, len(allDetectionTypes))
	copy(cp, allDetectionTypes)
	return cp
}

// AllContainerTypes returns the ordered list of known container types.
func AllContainerTypes() []ContainerType {
	cp := make([]ContainerType, len(allContainerTypes))
	copy(cp, allContainerTypes)
	return cp
}

// ParseDetectionType converts a string into a known DetectionType.
func ParseDetectionType(value string) (DetectionType, bool) {
	normalized := DetectionType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := detectionTypeSet[normalized]
	return normalized, ok
}

// ParseContainerType converts a string into a known ContainerType.
func ParseContainerType(value string) (ContainerType, bool) {
	normalized := ContainerType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := containerTypeSet[normalized]
	return normalized, ok
}

// ParseFreshness converts a string into a known Freshness level.
func ParseFreshness(value string) (Freshness, bool) {
	switch Freshness(strings.ToLower(strings.TrimSpace(value))) {
	case FreshnessFresh:
		return FreshnessFresh, true
	case FreshnessUseSoon:
		return FreshnessUseSoon, true
	case FreshnessExpired:
		return FreshnessExpired, true
	case FreshnessFrozen:
		return FreshnessFrozen, true
	case FreshnessUnknown:
		return FreshnessUnknown, true
	default:
		return "", false
	}
}
