/* In-memory session state: the current profile/metrics/plan aggregate plus
   the history sequences kept in the session store. One session per process,
   created at startup, reset on logout. */

package session

import (
	"errors"
	"sync"
	"time"

	"NutritionAssistant/internal/models"
	"NutritionAssistant/internal/storage"
)

var (
	ErrNoActiveProfile    = errors.New("no active profile in session")
	ErrEmptyLogRequest    = errors.New("meal log request contains no slots")
	ErrInvalidWeight      = errors.New("weight must be a positive number")
	ErrGenerationInFlight = errors.New("a plan generation is already in flight")
)

// dateFormat is the display format for history entry dates.
const dateFormat = "Jan 2, 2006"

type Session struct {
	mu    sync.RWMutex
	store *storage.Store

	profile *models.Profile
	metrics *models.Metrics
	plan    *models.MealPlan

	generating bool

	// now is swappable in tests.
	now func() time.Time
}

func New(store *storage.Store) *Session {
	return &Session{store: store, now: time.Now}
}

// BeginGeneration claims the single in-flight generation slot. The caller
// must release it with EndGeneration.
func (s *Session) BeginGeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return ErrGenerationInFlight
	}
	s.generating = true
	return nil
}

func (s *Session) EndGeneration() {
	s.mu.Lock()
	s.generating = false
	s.mu.Unlock()
}

// StartProfile replaces the aggregate and reseeds the weight sequence with a
// single entry at the profile's starting weight and the current date. Any
// previous plan and history belong to the replaced aggregate and are dropped.
func (s *Session) StartProfile(profile models.Profile, metrics models.Metrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearHistories(); err != nil {
		return err
	}
	seed := models.WeightEntry{Date: s.now().Format(dateFormat), Weight: profile.WeightKg}
	if err := s.store.AppendWeight(seed); err != nil {
		return err
	}

	s.profile = &profile
	s.metrics = &metrics
	s.plan = nil
	return nil
}

// AttachPlan sets the latest plan for the active profile.
func (s *Session) AttachPlan(plan models.MealPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ErrNoActiveProfile
	}
	s.plan = &plan
	return nil
}

// Apply installs a full generation outcome in one step, so a failed pipeline
// can never leave the session half-updated.
func (s *Session) Apply(profile models.Profile, metrics models.Metrics, plan models.MealPlan) error {
	if err := s.StartProfile(profile, metrics); err != nil {
		return err
	}
	return s.AttachPlan(plan)
}

// LogMeals appends one logging action. Empty input is rejected so history is
// never polluted with empty entries.
func (s *Session) LogMeals(slots []string) error {
	if len(slots) == 0 {
		return ErrEmptyLogRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ErrNoActiveProfile
	}
	return s.store.AppendMealLog(models.MealLogEntry{
		Date:  s.now().Format(dateFormat),
		Slots: slots,
	})
}

// RecordWeight appends a weight measurement.
func (s *Session) RecordWeight(value float64) error {
	if value <= 0 {
		return ErrInvalidWeight
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ErrNoActiveProfile
	}
	return s.store.AppendWeight(models.WeightEntry{
		Date:   s.now().Format(dateFormat),
		Weight: value,
	})
}

// Reset clears the whole session (logout).
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.metrics = nil
	s.plan = nil
	return s.store.Clear()
}

// Profile returns the active profile, or false when none is started.
func (s *Session) Profile() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.Profile{}, false
	}
	return *s.profile, true
}

func (s *Session) Metrics() (models.Metrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.metrics == nil {
		return models.Metrics{}, false
	}
	return *s.metrics, true
}

func (s *Session) Plan() (models.MealPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.plan == nil {
		return models.MealPlan{}, false
	}
	return *s.plan, true
}

func (s *Session) WeightHistory() ([]models.WeightEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.WeightHistory()
}

func (s *Session) MealLogHistory() ([]models.MealLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MealLogHistory()
}

func (s *Session) PlanHistory() ([]models.PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.PlanHistory()
}

// RecordPlan appends a generation to the session's audit trail.
func (s *Session) RecordPlan(record models.PlanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RecordPlan(record)
}
