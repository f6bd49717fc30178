// Package catalog holds the static registry of sustainable gardening
// practices.
//
// The catalog is compiled in and read-only: lookups never mutate it, and
// the ledger only ever stores practice IDs, so catalog edits cannot corrupt
// persisted state.
package catalog

// Impact is the tier of a practice's estimated contribution.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Point values per impact tier, applied to each of a practice's SDG keys
// when the practice is activated and reversed when it is removed.
const (
	PointsLow    = 5
	PointsMedium = 10
	PointsHigh   = 15
)

// Points returns the per-SDG point value for the tier. Unknown tiers score
// zero rather than failing; the ledger treats missing data as inert.
func (i Impact) Points() float64 {
	switch i {
	case ImpactLow:
		return PointsLow
	case ImpactMedium:
		return PointsMedium
	case ImpactHigh:
		return PointsHigh
	default:
		return 0
	}
}

// Difficulty grades how hard a practice is to adopt.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Practice is one adoptable sustainable-gardening action.
type Practice struct {
	ID          string
	Name        string
	Description string
	Impact      Impact
	Difficulty  Difficulty
	Tips        []string
	// SDGs lists the sustainable-development-goal keys this practice
	// contributes to (e.g. "sdg6").
	SDGs []string
}

// Category groups related practices.
type Category struct {
	Name        string
	Description string
	Practices   []Practice
}

// Categories returns all catalog categories in display order.
func Categories() []Category {
	return categories
}

// Lookup finds a practice by ID.
func Lookup(id string) (Practice, bool) {
	p, ok := byID[id]
	return p, ok
}

// CategoryOf returns the name of the category containing the practice ID.
func CategoryOf(id string) (string, bool) {
	name, ok := categoryByID[id]
	return name, ok
}

// PracticeCount returns the total number of catalog practices.
func PracticeCount() int {
	return len(byID)
}

//nolint:gochecknoglobals // Lookup indexes built once from the static catalog.
var (
	byID         map[string]Practice
	categoryByID map[string]string
)

func init() {
	byID = make(map[string]Practice)
	categoryByID = make(map[string]string)
	for _, cat := range categories {
		for _, p := range cat.Practices {
			byID[p.ID] = p
			categoryByID[p.ID] = cat.Name
		}
	}
}
