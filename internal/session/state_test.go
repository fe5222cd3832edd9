package session

import (
	"testing"

	"RapidCapture_SecurityTrainer/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSeenAndMarkSeen(t *testing.T) {
	var st State
	assert.False(t, st.Seen("a"))

	st.MarkSeen("a")
	st.MarkSeen("a") // once only
	st.MarkSeen("b")

	assert.True(t, st.Seen("a"))
	assert.True(t, st.Seen("b"))
	assert.Equal(t, []string{"a", "b"}, st.SeenIDs)
}

func TestStateForgetDropsOnlyGivenIDs(t *testing.T) {
	st := State{SeenIDs: []string{"easy-1", "med-1", "easy-2", "hard-1"}}
	st.Forget(map[string]struct{}{"easy-1": {}, "easy-2": {}})
	assert.Equal(t, []string{"med-1", "hard-1"}, st.SeenIDs)
}

func TestStateLastPair(t *testing.T) {
	var st State
	assert.False(t, st.HasLast())

	st.SetLast(scenario.TypeEmail, scenario.Phishing)
	require.True(t, st.HasLast())
	assert.Equal(t, scenario.TypeEmail, st.LastType)
	assert.Equal(t, scenario.Phishing, st.LastAnswer)
}

func TestStatsRecordRoundsAccuracy(t *testing.T) {
	st := Stats{Correct: 3, Total: 5, Accuracy: 60}

	got := st.Record(true)
	assert.Equal(t, Stats{Correct: 4, Total: 6, Accuracy: 67}, got)
	assert.Equal(t, got, st)

	got = st.Record(false)
	assert.Equal(t, Stats{Correct: 4, Total: 7, Accuracy: 57}, got)
}

func TestStatsRecordFromZero(t *testing.T) {
	var st Stats
	assert.Equal(t, Stats{Correct: 1, Total: 1, Accuracy: 100}, st.Record(true))
	assert.Equal(t, Stats{Correct: 1, Total: 2, Accuracy: 50}, st.Record(false))
}

func TestSnapshotReset(t *testing.T) {
	sn := Snapshot{
		State: State{SeenIDs: []string{"a"}, LastType: scenario.TypeSMS, LastAnswer: scenario.Legitimate},
		Stats: Stats{Correct: 2, Total: 3, Accuracy: 67},
	}
	sn.Reset()
	assert.Equal(t, Snapshot{}, sn)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	// unknown user loads a fresh snapshot
	snap, err := store.Load("ghost")
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, snap)

	snap.State.MarkSeen("a")
	snap.Stats.Record(true)
	require.NoError(t, store.Save("alice", snap))

	got, err := store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	require.NoError(t, store.Clear("alice"))
	got, err = store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, got)
}
