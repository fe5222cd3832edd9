package feedback

import (
	"log"
	"sync"

	"RapidCapture_SecurityTrainer/internal/scenario"
)

// Service runs analyzer calls asynchronously with one pending slot per
// user. A new request takes ownership of the slot; a response arriving
// for an attempt the user has already moved past is discarded, so stale
// text never overwrites the newer scenario's feedback.
type Service struct {
	analyzer Analyzer

	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	scenarioID string
	analysis   *Analysis
	ready      bool
}

func NewService(analyzer Analyzer) *Service {
	return &Service{analyzer: analyzer, slots: make(map[string]*slot)}
}

// Request starts an async analysis for the given attempt. The fallback
// derived from the scenario itself fills the slot if the remote call
// fails, so Consume always eventually yields something.
func (s *Service) Request(user string, sc *scenario.Scenario, req Request) {
	s.mu.Lock()
	s.slots[user] = &slot{scenarioID: sc.ID}
	s.mu.Unlock()

	go func() {
		analysis, err := s.analyzer.Analyze(req)
		if err != nil {
			log.Printf("feedback.Service: analyzer failed for scenario %s: %v", sc.ID, err)
			analysis = Fallback(sc, req.IsCorrect)
		}
		s.resolve(user, sc.ID, analysis)
	}()
}

// resolve stores the result unless the slot has moved on to a newer
// scenario in the meantime.
func (s *Service) resolve(user, scenarioID string, analysis *Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[user]
	if !ok || sl.scenarioID != scenarioID {
		log.Printf("feedback.Service: dropping stale analysis for scenario %s", scenarioID)
		return
	}
	sl.analysis = analysis
	sl.ready = true
}

// Consume returns the analysis for the given scenario once ready. The
// second return is false while the call is still in flight or when the
// slot belongs to a different scenario.
func (s *Service) Consume(user, scenarioID string) (*Analysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[user]
	if !ok || sl.scenarioID != scenarioID || !sl.ready {
		return nil, false
	}
	return sl.analysis, true
}

// Drop clears a user's slot, e.g. on session reset.
func (s *Service) Drop(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, user)
}
