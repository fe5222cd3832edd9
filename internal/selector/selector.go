// Package selector picks the next training scenario from the corpus so
// that a session sees balanced difficulty, a near 1:1 phishing/legitimate
// mix, and minimal immediate repetition.
package selector

import (
	"fmt"
	"math/rand"
	"time"

	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/session"
)

// CorpusExhaustedError reports a difficulty whose corpus pool is empty.
// This is an authoring defect, not a runtime condition: seen-filtering
// alone can never trigger it.
type CorpusExhaustedError struct {
	Difficulty scenario.Difficulty
}

func (e *CorpusExhaustedError) Error() string {
	return fmt.Sprintf("corpus exhausted: no scenarios for difficulty %q", e.Difficulty)
}

// Selector narrows the corpus and returns one scenario per call,
// recording side effects in the caller's session state.
type Selector struct {
	corpus *scenario.Corpus
	rng    *rand.Rand
}

// New returns a Selector over the corpus. A nil rng gets a time-seeded
// source; tests pass a fixed seed for deterministic runs.
func New(corpus *scenario.Corpus, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{corpus: corpus, rng: rng}
}

// Next selects one scenario and updates state. An empty filter means a
// uniformly random difficulty for this call; the anti-repetition and
// label-balance passes then apply within whichever pool was chosen.
func (s *Selector) Next(state *session.State, filter scenario.Difficulty) (*scenario.Scenario, error) {
	difficulty := filter
	if difficulty == "" {
		ds := scenario.Difficulties()
		difficulty = ds[s.rng.Intn(len(ds))]
	}

	poolAll := s.corpus.Pool(difficulty)
	if len(poolAll) == 0 {
		return nil, &CorpusExhaustedError{Difficulty: difficulty}
	}

	available := unseen(poolAll, state)

	// All scenarios for this difficulty seen: forget only this
	// difficulty's history and start the bucket over.
	if len(available) == 0 {
		ids := make(map[string]struct{}, len(poolAll))
		for _, sc := range poolAll {
			ids[sc.ID] = struct{}{}
		}
		state.Forget(ids)
		available = poolAll
	}

	// Soft pass: avoid the exact (type, answer) pair of the previous
	// scenario, but never at the cost of emptying the pool.
	if len(available) > 1 && state.HasLast() {
		varied := available[:0:0]
		for _, sc := range available {
			if sc.Type != state.LastType || sc.Answer != state.LastAnswer {
				varied = append(varied, sc)
			}
		}
		if len(varied) > 0 {
			available = varied
		}
	}

	available = s.balanceLabels(available, state)

	s.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	chosen := available[0]

	state.MarkSeen(chosen.ID)
	state.SetLast(chosen.Type, chosen.Answer)
	return chosen, nil
}

// balanceLabels prefers the label opposite to the previous scenario's,
// keeping the phishing/legitimate mix close to 1:1 over a run. With no
// prior label the partition is chosen by coin flip.
func (s *Selector) balanceLabels(available []*scenario.Scenario, state *session.State) []*scenario.Scenario {
	var phish, legit []*scenario.Scenario
	for _, sc := range available {
		if sc.Answer == scenario.Phishing {
			phish = append(phish, sc)
		} else {
			legit = append(legit, sc)
		}
	}
	if len(phish) == 0 || len(legit) == 0 {
		return available
	}
	switch state.LastAnswer {
	case scenario.Phishing:
		return legit
	case scenario.Legitimate:
		return phish
	}
	if s.rng.Intn(2) == 0 {
		return phish
	}
	return legit
}

func unseen(pool []*scenario.Scenario, state *session.State) []*scenario.Scenario {
	out := make([]*scenario.Scenario, 0, len(pool))
	for _, sc := range pool {
		if !state.Seen(sc.ID) {
			out = append(out, sc)
		}
	}
	return out
}
