package drill

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/selector"
	"RapidCapture_SecurityTrainer/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records attempts in memory.
type fakeSink struct {
	mu       sync.Mutex
	attempts []Attempt
	score    int
	correct  int
}

func (f *fakeSink) RecordAttempt(user string, a Attempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeSink) AccumulateProfile(user string, scoreDelta int, isCorrect bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.score += scoreDelta
	if isCorrect {
		f.correct++
	}
	return nil
}

func (f *fakeSink) waitAttempts(t *testing.T, n int) []Attempt {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		if len(f.attempts) >= n {
			out := append([]Attempt(nil), f.attempts...)
			f.mu.Unlock()
			return out
		}
		f.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("sink never saw %d attempts", n)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeSink) {
	t.Helper()
	corpus, err := scenario.NewCorpus(scenario.Builtin())
	require.NoError(t, err)
	require.NoError(t, corpus.Validate())

	sink := &fakeSink{}
	svc := NewService(
		corpus,
		selector.New(corpus, rand.New(rand.NewSource(1))),
		session.NewMemoryStore(),
		sink,
		nil, // no remote analyzer in these tests
	)
	return svc, sink
}

func TestNextAdvancesSession(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Next("alice", scenario.Easy)
	require.NoError(t, err)
	second, err := svc.Next("alice", scenario.Easy)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	stats, err := svc.Stats("alice")
	require.NoError(t, err)
	assert.Equal(t, session.Stats{}, stats, "drawing scenarios must not touch stats")
}

func TestSubmitCorrectAnswer(t *testing.T) {
	svc, sink := newTestService(t)

	sc, err := svc.Next("alice", scenario.Easy)
	require.NoError(t, err)

	right := "report"
	if sc.Answer == scenario.Legitimate {
		right = "correct_safe_action"
	}
	res, err := svc.Submit("alice", sc.ID, right, 20)
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.Equal(t, 15, res.Score, "easy base 10 plus fast bonus 5")
	assert.Equal(t, sc.Explanation, res.Explanation)
	assert.Equal(t, session.Stats{Correct: 1, Total: 1, Accuracy: 100}, res.Stats)
	require.NotNil(t, res.Feedback)
	assert.NotEmpty(t, res.Feedback.Feedback)

	attempts := sink.waitAttempts(t, 1)
	assert.Equal(t, sc.ID, attempts[0].ScenarioID)
	assert.Equal(t, right, attempts[0].SelectedAction)
	assert.True(t, attempts[0].IsCorrect)
	assert.Equal(t, 15, attempts[0].ScoreDelta)
	assert.NotEmpty(t, attempts[0].ID)
}

func TestSubmitIncorrectAnswer(t *testing.T) {
	svc, sink := newTestService(t)

	sc, err := svc.Next("alice", scenario.Hard)
	require.NoError(t, err)

	wrong := "report"
	if sc.Answer == scenario.Phishing {
		wrong = "click_link"
	}
	res, err := svc.Submit("alice", sc.ID, wrong, 10)
	require.NoError(t, err)

	assert.False(t, res.Correct)
	assert.Equal(t, -5, res.Score, "no time bonus for incorrect answers")
	assert.Equal(t, session.Stats{Correct: 0, Total: 1, Accuracy: 0}, res.Stats)

	attempts := sink.waitAttempts(t, 1)
	assert.False(t, attempts[0].IsCorrect)
	assert.Equal(t, -5, attempts[0].ScoreDelta)
}

func TestSubmitUnknownActionScoresIncorrect(t *testing.T) {
	svc, _ := newTestService(t)

	sc, err := svc.Next("alice", scenario.Medium)
	require.NoError(t, err)

	res, err := svc.Submit("alice", sc.ID, "shrug", 10)
	require.NoError(t, err, "unknown tags are judged, not rejected")
	assert.False(t, res.Correct)
	assert.Equal(t, -5, res.Score)
}

func TestSubmitUnknownScenario(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit("alice", "no-such-id", "report", 10)
	require.ErrorIs(t, err, ErrUnknownScenario)
}

func TestStatsAccumulateAcrossSubmits(t *testing.T) {
	svc, sink := newTestService(t)

	for i := 0; i < 3; i++ {
		sc, err := svc.Next("alice", scenario.Easy)
		require.NoError(t, err)

		action := "report"
		if sc.Answer == scenario.Legitimate {
			action = "correct_safe_action"
		}
		if i == 2 { // answer the last one wrong
			if sc.Answer == scenario.Phishing {
				action = "click_link"
			} else {
				action = "report"
			}
		}
		_, err = svc.Submit("alice", sc.ID, action, 45)
		require.NoError(t, err)
	}

	stats, err := svc.Stats("alice")
	require.NoError(t, err)
	assert.Equal(t, session.Stats{Correct: 2, Total: 3, Accuracy: 67}, stats)

	sink.waitAttempts(t, 3)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, 2, sink.correct)
	assert.Equal(t, 10+2+10+2-5, sink.score)
}

func TestResetClearsSessionButNotSink(t *testing.T) {
	svc, sink := newTestService(t)

	sc, err := svc.Next("alice", scenario.Easy)
	require.NoError(t, err)
	_, err = svc.Submit("alice", sc.ID, "report", 10)
	require.NoError(t, err)
	sink.waitAttempts(t, 1)

	require.NoError(t, svc.Reset("alice"))

	stats, err := svc.Stats("alice")
	require.NoError(t, err)
	assert.Equal(t, session.Stats{}, stats)

	// the persisted history is untouched by a session reset
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Len(t, sink.attempts, 1)
}

func TestUsersAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)

	sc, err := svc.Next("alice", scenario.Easy)
	require.NoError(t, err)
	_, err = svc.Submit("alice", sc.ID, "report", 10)
	require.NoError(t, err)

	stats, err := svc.Stats("bob")
	require.NoError(t, err)
	assert.Equal(t, session.Stats{}, stats)
}

func TestSummary(t *testing.T) {
	svc, _ := newTestService(t)
	sum := svc.Summary()
	assert.Equal(t, 30, sum.Total)
}
