// Package drill orchestrates a training run: serving the next scenario,
// judging a committed action, keeping session stats, and reporting
// attempts to the persistence store without ever blocking on it.
package drill

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"RapidCapture_SecurityTrainer/internal/feedback"
	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/scoring"
	"RapidCapture_SecurityTrainer/internal/selector"
	"RapidCapture_SecurityTrainer/internal/session"

	"github.com/google/uuid"
)

// ErrUnknownScenario is returned when a submitted scenario id is not in
// the corpus.
var ErrUnknownScenario = errors.New("unknown scenario id")

// Attempt is one judged response, as reported to the persistence store.
type Attempt struct {
	ID               string    `json:"id"`
	ScenarioID       string    `json:"scenarioId"`
	SelectedAction   string    `json:"selectedAction"`
	IsCorrect        bool      `json:"isCorrect"`
	ScoreDelta       int       `json:"scoreDelta"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AttemptSink receives completed attempts. Writes are fire-and-forget:
// failures are logged and swallowed, never surfaced to the user.
type AttemptSink interface {
	RecordAttempt(user string, a Attempt) error
	AccumulateProfile(user string, scoreDelta int, isCorrect bool) error
}

// Result is what the user sees immediately after committing an action.
// Feedback holds the deterministic local analysis; richer remote text
// can be polled later via Feedback().
type Result struct {
	ScenarioID  string             `json:"scenarioId"`
	Correct     bool               `json:"correct"`
	Score       int                `json:"score"`
	Explanation string             `json:"explanation"`
	Stats       session.Stats      `json:"stats"`
	Feedback    *feedback.Analysis `json:"feedback"`
}

// Service runs drills for all users. Per-user operations are strictly
// sequential (one outstanding scenario at a time); a single mutex is
// enough at this scale and also guards the selector's rand source.
type Service struct {
	corpus   *scenario.Corpus
	selector *selector.Selector
	sessions session.Store
	sink     AttemptSink
	feedback *feedback.Service

	mu sync.Mutex
}

func NewService(corpus *scenario.Corpus, sel *selector.Selector, sessions session.Store, sink AttemptSink, fb *feedback.Service) *Service {
	return &Service{
		corpus:   corpus,
		selector: sel,
		sessions: sessions,
		sink:     sink,
		feedback: fb,
	}
}

// Next returns the next scenario for the user. An empty difficulty lets
// the selector pick one at random for this call.
func (s *Service) Next(user string, difficulty scenario.Difficulty) (*scenario.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.sessions.Load(user)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	sc, err := s.selector.Next(&snap.State, difficulty)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(user, snap); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sc, nil
}

// Submit judges a committed action: classify, score, update stats, kick
// off the persistence and feedback side effects, and return the verdict.
// Stats are updated optimistically before any external write.
func (s *Service) Submit(user, scenarioID, action string, timeTakenSeconds int) (*Result, error) {
	sc, ok := s.corpus.ByID(scenarioID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, scenarioID)
	}

	isCorrect, err := scoring.Classify(sc.Answer, action)
	if err != nil {
		// Unknown tags judge as incorrect; the raw tag is kept in the
		// log for a corpus/UI audit.
		log.Printf("drill.Submit(): %v (scenario %s, user %s)", err, scenarioID, user)
	}
	delta := scoring.Points(sc.Difficulty, isCorrect) + scoring.TimeBonus(isCorrect, timeTakenSeconds)

	s.mu.Lock()
	snap, loadErr := s.sessions.Load(user)
	if loadErr != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("load session: %w", loadErr)
	}
	stats := snap.Stats.Record(isCorrect)
	if err := s.sessions.Save(user, snap); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.mu.Unlock()

	attempt := Attempt{
		ID:               uuid.New().String(),
		ScenarioID:       scenarioID,
		SelectedAction:   action,
		IsCorrect:        isCorrect,
		ScoreDelta:       delta,
		TimeTakenSeconds: timeTakenSeconds,
		CreatedAt:        time.Now(),
	}
	go func() {
		if err := s.sink.RecordAttempt(user, attempt); err != nil {
			log.Printf("drill.Submit(): failed to record attempt %s: %v", attempt.ID, err)
		}
		if err := s.sink.AccumulateProfile(user, delta, isCorrect); err != nil {
			log.Printf("drill.Submit(): failed to accumulate profile for %s: %v", user, err)
		}
	}()

	if s.feedback != nil {
		s.feedback.Request(user, sc, feedback.Request{
			ScenarioID:       sc.ID,
			Title:            sc.Title,
			Type:             string(sc.Type),
			Difficulty:       string(sc.Difficulty),
			UserAction:       action,
			CorrectAction:    scoring.CorrectAction(sc.Answer),
			IsCorrect:        isCorrect,
			TimeTakenSeconds: timeTakenSeconds,
		})
	}

	return &Result{
		ScenarioID:  scenarioID,
		Correct:     isCorrect,
		Score:       delta,
		Explanation: sc.Explanation,
		Stats:       stats,
		Feedback:    feedback.Fallback(sc, isCorrect),
	}, nil
}

// Stats returns the current session stats for the user.
func (s *Service) Stats(user string) (session.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.sessions.Load(user)
	if err != nil {
		return session.Stats{}, fmt.Errorf("load session: %w", err)
	}
	return snap.Stats, nil
}

// Reset clears the user's session state and stats. The corpus and the
// persisted profile/attempt history are untouched.
func (s *Service) Reset(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedback != nil {
		s.feedback.Drop(user)
	}
	if err := s.sessions.Clear(user); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Feedback polls for the remote analysis of the given scenario. ok is
// false while the call is in flight or after the user has moved on.
func (s *Service) Feedback(user, scenarioID string) (*feedback.Analysis, bool) {
	if s.feedback == nil {
		return nil, false
	}
	return s.feedback.Consume(user, scenarioID)
}

// Summary exposes corpus counts for the dashboard.
func (s *Service) Summary() scenario.Summary {
	return s.corpus.Summarize()
}
