package ledger

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/glenveagh/gardenledger/internal/catalog"
	"github.com/glenveagh/gardenledger/internal/events"
)

// Typed errors surfaced by mutation operations.
var (
	// ErrUnknownPractice means the practice ID is not in the catalog.
	ErrUnknownPractice = errors.New("unknown practice id")
	// ErrUnknownKind means the resource kind is not tracked.
	ErrUnknownKind = errors.New("unknown resource kind")
)

// Points added to the overall score when a practice is activated, and
// removed when it is deactivated.
const practiceScoreDelta = 10

// Service applies mutation operations to the ledger. Every operation is a
// synchronous load-transform-save, followed by an event on the bus.
type Service struct {
	store  *Store
	bus    *events.Bus
	logger zerolog.Logger
}

// NewService wires a Service to its store and event bus.
func NewService(store *Store, bus *events.Bus, logger zerolog.Logger) *Service {
	return &Service{store: store, bus: bus, logger: logger}
}

// Progress returns the current ledger document.
func (s *Service) Progress() UserProgress {
	return s.store.Load()
}

// AddPractice activates a catalog practice. Adding an already-active
// practice is a no-op (added=false, nil error), so the operation is
// idempotent. Unknown practice IDs are rejected outright rather than half
// recorded.
func (s *Service) AddPractice(id string, implementedOn time.Time, notes string) (UserProgress, bool, error) {
	practice, ok := catalog.Lookup(id)
	if !ok {
		return UserProgress{}, false, fmt.Errorf("%w: %q", ErrUnknownPractice, id)
	}

	progress := s.store.Load()
	if progress.HasPractice(id) {
		return progress, false, nil
	}

	progress.ActivePractices = append(progress.ActivePractices, ActivePractice{
		PracticeID:    id,
		ImplementedOn: implementedOn,
		Notes:         notes,
	})

	points := practice.Impact.Points()
	for _, key := range practice.SDGs {
		progress.SDGScores[key] = clampSDG(progress.SDGScores[key] + points)
	}
	progress.Score = clampScore(progress.Score + practiceScoreDelta)

	if err := s.store.Save(progress); err != nil {
		return UserProgress{}, false, fmt.Errorf("saving ledger: %w", err)
	}

	s.logger.Info().Str("practice_id", id).Int("score", progress.Score).Msg("practice added")
	s.emit(events.TopicPracticeAdded, events.Payload{
		Timestamp:  time.Now(),
		PracticeID: id,
	})
	return progress, true, nil
}

// RemovePractice deactivates a practice, reversing the score and SDG
// points its activation granted. Removing a practice that is not active is
// a no-op (removed=false, nil error).
func (s *Service) RemovePractice(id string) (UserProgress, bool, error) {
	practice, ok := catalog.Lookup(id)
	if !ok {
		return UserProgress{}, false, fmt.Errorf("%w: %q", ErrUnknownPractice, id)
	}

	progress := s.store.Load()
	if !progress.HasPractice(id) {
		return progress, false, nil
	}

	kept := progress.ActivePractices[:0]
	for _, ap := range progress.ActivePractices {
		if ap.PracticeID != id {
			kept = append(kept, ap)
		}
	}
	progress.ActivePractices = kept

	points := practice.Impact.Points()
	for _, key := range practice.SDGs {
		progress.SDGScores[key] = clampSDG(progress.SDGScores[key] - points)
	}
	progress.Score = clampScore(progress.Score - practiceScoreDelta)

	if err := s.store.Save(progress); err != nil {
		return UserProgress{}, false, fmt.Errorf("saving ledger: %w", err)
	}

	s.logger.Info().Str("practice_id", id).Int("score", progress.Score).Msg("practice removed")
	s.emit(events.TopicPracticeRemoved, events.Payload{
		Timestamp:  time.Now(),
		PracticeID: id,
	})
	return progress, true, nil
}

// RecordResourceUsage appends a usage sample to the kind's series and
// nudges the mapped SDG scores by a kind-specific linear function of the
// amount. Non-finite amounts are coerced to zero, never rejected. After
// the nudge the overall score is overwritten with the mean of all SDG
// scores.
func (s *Service) RecordResourceUsage(kind ResourceKind, amount float64, date time.Time, metadata map[string]string) (UserProgress, error) {
	if !ValidKind(kind) {
		return UserProgress{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	amount = sanitizeAmount(amount)

	progress := s.store.Load()
	progress.ResourceUsage[kind] = append(progress.ResourceUsage[kind], ResourceEntry{
		Date:     date,
		Amount:   amount,
		Metadata: metadata,
	})

	applyResourceNudge(&progress, kind, amount)

	if err := s.store.Save(progress); err != nil {
		return UserProgress{}, fmt.Errorf("saving ledger: %w", err)
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Float64("amount", amount).
		Int("score", progress.Score).
		Msg("resource usage recorded")
	s.emit(events.TopicResourceUsageUpdated, events.Payload{
		Timestamp:    time.Now(),
		ResourceKind: string(kind),
		Amount:       amount,
	})
	return progress, nil
}

// RecordCarbonOffset appends a forced-negative entry to the carbon series,
// tagged with its source label, and applies the same SDG nudge and score
// overwrite as RecordResourceUsage.
func (s *Service) RecordCarbonOffset(amount float64, source string, date time.Time) (UserProgress, error) {
	amount = -math.Abs(sanitizeAmount(amount))

	progress := s.store.Load()
	progress.ResourceUsage[KindCarbon] = append(progress.ResourceUsage[KindCarbon], ResourceEntry{
		Date:     date,
		Amount:   amount,
		Metadata: map[string]string{"source": source, "offset": "true"},
	})

	applyResourceNudge(&progress, KindCarbon, amount)

	if err := s.store.Save(progress); err != nil {
		return UserProgress{}, fmt.Errorf("saving ledger: %w", err)
	}

	s.logger.Info().
		Float64("amount", amount).
		Str("source", source).
		Msg("carbon offset recorded")
	s.emit(events.TopicCarbonOffsetRecorded, events.Payload{
		Timestamp:    time.Now(),
		ResourceKind: string(KindCarbon),
		Amount:       amount,
		Source:       source,
	})
	return progress, nil
}

// AddWildlifeSpotting appends a sighting record. A missing ID is assigned
// a fresh ULID.
func (s *Service) AddWildlifeSpotting(spotting WildlifeSpotting) (UserProgress, error) {
	if spotting.ID == "" {
		spotting.ID = newSpottingID()
	}
	if spotting.RecordedAt.IsZero() {
		spotting.RecordedAt = time.Now()
	}

	progress := s.store.Load()
	progress.WildlifeSpottings = append(progress.WildlifeSpottings, spotting)

	if err := s.store.Save(progress); err != nil {
		return UserProgress{}, fmt.Errorf("saving ledger: %w", err)
	}

	s.logger.Info().Str("species", spotting.Species).Msg("wildlife spotting recorded")
	s.emit(events.TopicDataChanged, events.Payload{Timestamp: time.Now()})
	return progress, nil
}

// Reset deletes the persisted ledger. The next operation starts from a
// default document.
func (s *Service) Reset() error {
	if err := s.store.Reset(); err != nil {
		return err
	}
	s.logger.Info().Msg("ledger reset")
	s.emit(events.TopicDataChanged, events.Payload{Timestamp: time.Now()})
	return nil
}

// emit publishes the specific topic and the catch-all data-changed topic.
func (s *Service) emit(topic events.Topic, payload events.Payload) {
	if s.bus == nil {
		return
	}
	s.bus.Emit(topic, payload)
	if topic != events.TopicDataChanged {
		s.bus.Emit(events.TopicDataChanged, payload)
	}
}

// sdgNudge maps one resource kind to a target SDG key and per-unit factor.
type sdgNudge struct {
	key    string
	factor float64
}

// resourceNudges drives the SDG adjustment in RecordResourceUsage.
// For consumption kinds (water, carbon, energy) the sign is inverted:
// using less scores positively, using more scores negatively. For
// production kinds (compost, harvest, waste diverted) a positive amount
// scores positively.
//
//nolint:gochecknoglobals // Static lookup table.
var resourceNudges = map[ResourceKind][]sdgNudge{
	KindWater:   {{key: SDG6, factor: 0.01}},
	KindCarbon:  {{key: SDG13, factor: 0.01}},
	KindEnergy:  {{key: SDG7, factor: 0.01}, {key: SDG13, factor: 0.005}},
	KindCompost: {{key: SDG12, factor: 0.02}, {key: SDG15, factor: 0.01}},
	KindHarvest: {{key: SDG2, factor: 0.02}},
	KindWaste:   {{key: SDG12, factor: 0.01}},
}

// consumptionKinds lists the kinds where a lower amount is better; their
// nudges invert the sign of the recorded amount.
//
//nolint:gochecknoglobals // Static lookup table.
var consumptionKinds = map[ResourceKind]bool{
	KindWater:  true,
	KindCarbon: true,
	KindEnergy: true,
}

// applyResourceNudge adjusts the SDG scores for a recorded amount and then
// overwrites the overall score with the mean of all SDG scores. The mean
// overwrite intentionally diverges from the flat practice-toggle rule; see
// DESIGN.md.
func applyResourceNudge(progress *UserProgress, kind ResourceKind, amount float64) {
	delta := amount
	if consumptionKinds[kind] {
		delta = -delta
	}
	for _, nudge := range resourceNudges[kind] {
		progress.SDGScores[nudge.key] = clampSDG(progress.SDGScores[nudge.key] + delta*nudge.factor)
	}
	progress.Score = clampScore(int(math.Round(meanSDGScore(*progress))))
}

func meanSDGScore(progress UserProgress) float64 {
	keys := SDGKeys()
	if len(keys) == 0 {
		return 0
	}
	var sum float64
	for _, key := range keys {
		sum += clampSDG(progress.SDGScores[key])
	}
	return sum / float64(len(keys))
}

func newSpottingID() string {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
