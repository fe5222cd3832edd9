package session

import (
	"math"

	"RapidCapture_SecurityTrainer/internal/scenario"
)

// Storage keys under which session data is persisted. Kept stable so
// snapshots survive restarts and client reloads.
const (
	StateKey = "cyber_scenarios_session"
	StatsKey = "cyber_scenarios_stats"
)

// State is the per-session selection bookkeeping: which scenarios the
// user has already seen, and the shape of the most recent one.
type State struct {
	SeenIDs    []string        `json:"seenIds"`
	LastType   scenario.Type   `json:"lastType,omitempty"`
	LastAnswer scenario.Answer `json:"lastAnswer,omitempty"`
}

// Seen reports whether a scenario id was already presented this session.
func (s *State) Seen(id string) bool {
	for _, v := range s.SeenIDs {
		if v == id {
			return true
		}
	}
	return false
}

// MarkSeen records a presented scenario id, once.
func (s *State) MarkSeen(id string) {
	if !s.Seen(id) {
		s.SeenIDs = append(s.SeenIDs, id)
	}
}

// Forget drops the given ids from the seen-set, leaving the rest of the
// session history untouched. Used when one difficulty bucket runs dry.
func (s *State) Forget(ids map[string]struct{}) {
	kept := s.SeenIDs[:0]
	for _, v := range s.SeenIDs {
		if _, drop := ids[v]; !drop {
			kept = append(kept, v)
		}
	}
	s.SeenIDs = kept
}

// HasLast reports whether a scenario has been shown this session.
func (s *State) HasLast() bool {
	return s.LastType != "" && s.LastAnswer != ""
}

// SetLast records the (type, answer) pair of the scenario just shown.
func (s *State) SetLast(t scenario.Type, a scenario.Answer) {
	s.LastType = t
	s.LastAnswer = a
}

// Stats is the running session score: counters plus derived accuracy.
type Stats struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
}

// Record folds one completed scenario into the stats and returns the
// updated snapshot. Counters only ever grow; Reset is the only way down.
func (st *Stats) Record(isCorrect bool) Stats {
	st.Total++
	if isCorrect {
		st.Correct++
	}
	st.Accuracy = int(math.Round(float64(st.Correct) / float64(st.Total) * 100))
	return *st
}

// Snapshot bundles state and stats for persistence. The zero value is a
// fresh session.
type Snapshot struct {
	State State `json:"state"`
	Stats Stats `json:"stats"`
}

// Reset clears the snapshot back to a fresh session.
func (sn *Snapshot) Reset() {
	*sn = Snapshot{}
}
