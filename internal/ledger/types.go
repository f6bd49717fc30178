// Package ledger owns the persisted sustainability document and the
// operations and derived metrics over it.
//
// The ledger is a single JSON document per user: active practices, recorded
// resource usage, per-SDG scores, and wildlife spottings. Every mutation is
// a synchronous read-transform-write against the document, followed by an
// event on the bus so other mounted components can refresh.
package ledger

import (
	"math"
	"time"
)

// ResourceKind is one tracked resource series.
type ResourceKind string

const (
	KindWater   ResourceKind = "water"
	KindCompost ResourceKind = "compost"
	KindHarvest ResourceKind = "harvest"
	KindCarbon  ResourceKind = "carbon"
	KindEnergy  ResourceKind = "energy"
	KindWaste   ResourceKind = "waste"
)

// Kinds returns all resource kinds in display order.
func Kinds() []ResourceKind {
	return []ResourceKind{KindWater, KindCompost, KindHarvest, KindCarbon, KindEnergy, KindWaste}
}

// ValidKind reports whether k names a tracked resource series.
func ValidKind(k ResourceKind) bool {
	switch k {
	case KindWater, KindCompost, KindHarvest, KindCarbon, KindEnergy, KindWaste:
		return true
	default:
		return false
	}
}

// SDG score keys tracked by the ledger.
const (
	SDG2  = "sdg2"  // zero hunger
	SDG3  = "sdg3"  // good health and well-being
	SDG6  = "sdg6"  // clean water and sanitation
	SDG7  = "sdg7"  // affordable and clean energy
	SDG8  = "sdg8"  // decent work and economic growth
	SDG9  = "sdg9"  // industry, innovation and infrastructure
	SDG11 = "sdg11" // sustainable cities and communities
	SDG12 = "sdg12" // responsible consumption and production
	SDG13 = "sdg13" // climate action
	SDG14 = "sdg14" // life below water
	SDG15 = "sdg15" // life on land
	SDG17 = "sdg17" // partnerships for the goals
)

// SDGKeys returns the tracked SDG keys in numeric order.
func SDGKeys() []string {
	return []string{SDG2, SDG3, SDG6, SDG7, SDG8, SDG9, SDG11, SDG12, SDG13, SDG14, SDG15, SDG17}
}

// ActivePractice records one adopted practice.
type ActivePractice struct {
	PracticeID    string    `json:"practice_id"`
	ImplementedOn time.Time `json:"implemented_on"`
	Notes         string    `json:"notes,omitempty"`
}

// ResourceEntry is one dated, signed usage sample. Negative amounts
// represent a reduction or offset.
type ResourceEntry struct {
	Date     time.Time         `json:"date"`
	Amount   float64           `json:"amount"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// WildlifeSpotting is an auxiliary sighting record.
type WildlifeSpotting struct {
	ID         string    `json:"id"`
	Species    string    `json:"species"`
	Category   string    `json:"category,omitempty"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	Location   string    `json:"location,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// UserProgress is the ledger document. One instance exists per user.
type UserProgress struct {
	ActivePractices   []ActivePractice                 `json:"active_practices"`
	ResourceUsage     map[ResourceKind][]ResourceEntry `json:"resource_usage"`
	Score             int                              `json:"score"`
	SDGScores         map[string]float64               `json:"sdg_scores"`
	WildlifeSpottings []WildlifeSpotting               `json:"wildlife_spottings,omitempty"`
}

// DefaultProgress returns a structurally complete empty ledger.
func DefaultProgress() UserProgress {
	p := UserProgress{
		ActivePractices: []ActivePractice{},
		ResourceUsage:   make(map[ResourceKind][]ResourceEntry, len(Kinds())),
		SDGScores:       make(map[string]float64, len(SDGKeys())),
	}
	for _, kind := range Kinds() {
		p.ResourceUsage[kind] = []ResourceEntry{}
	}
	for _, key := range SDGKeys() {
		p.SDGScores[key] = 0
	}
	return p
}

// Normalize patches missing fields in place so that a document written by
// an older build (or hand-edited) is structurally complete after load.
func (p *UserProgress) Normalize() {
	if p.ActivePractices == nil {
		p.ActivePractices = []ActivePractice{}
	}
	if p.ResourceUsage == nil {
		p.ResourceUsage = make(map[ResourceKind][]ResourceEntry, len(Kinds()))
	}
	for _, kind := range Kinds() {
		if p.ResourceUsage[kind] == nil {
			p.ResourceUsage[kind] = []ResourceEntry{}
		}
	}
	if p.SDGScores == nil {
		p.SDGScores = make(map[string]float64, len(SDGKeys()))
	}
	for _, key := range SDGKeys() {
		if _, ok := p.SDGScores[key]; !ok {
			p.SDGScores[key] = 0
		}
	}
	p.Score = clampScore(p.Score)
	for key, v := range p.SDGScores {
		p.SDGScores[key] = clampSDG(v)
	}
}

// HasPractice reports whether the practice ID is currently active.
func (p UserProgress) HasPractice(id string) bool {
	for _, ap := range p.ActivePractices {
		if ap.PracticeID == id {
			return true
		}
	}
	return false
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampSDG(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// sanitizeAmount coerces non-finite amounts to zero. Missing or
// unparseable quantities are treated as zero everywhere, never rejected.
func sanitizeAmount(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
