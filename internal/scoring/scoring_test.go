package scoring

import (
	"testing"

	"RapidCapture_SecurityTrainer/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	assert.Equal(t, 10, Points(scenario.Easy, true))
	assert.Equal(t, 20, Points(scenario.Medium, true))
	assert.Equal(t, 30, Points(scenario.Hard, true))

	// the penalty is flat across difficulties
	for _, d := range scenario.Difficulties() {
		assert.Equal(t, -5, Points(d, false))
	}
}

func TestTimeBonus(t *testing.T) {
	assert.Equal(t, 5, TimeBonus(true, 0))
	assert.Equal(t, 5, TimeBonus(true, 29))
	assert.Equal(t, 2, TimeBonus(true, 30))
	assert.Equal(t, 2, TimeBonus(true, 59))
	assert.Equal(t, 0, TimeBonus(true, 60))
	assert.Equal(t, 0, TimeBonus(true, 300))

	// incorrect answers never earn a bonus
	assert.Equal(t, 0, TimeBonus(false, 10))
}

func TestClassifyDisengageActions(t *testing.T) {
	for action := range disengageActions {
		correct, err := Classify(scenario.Phishing, action)
		require.NoError(t, err, action)
		assert.True(t, correct, "disengage %q on phishing should be correct", action)

		correct, err = Classify(scenario.Legitimate, action)
		require.NoError(t, err, action)
		assert.False(t, correct, "disengage %q on legitimate should be incorrect", action)
	}
}

func TestClassifyEngageActions(t *testing.T) {
	for action := range engageActions {
		correct, err := Classify(scenario.Legitimate, action)
		require.NoError(t, err, action)
		assert.True(t, correct, "engage %q on legitimate should be correct", action)

		correct, err = Classify(scenario.Phishing, action)
		require.NoError(t, err, action)
		assert.False(t, correct, "engage %q on phishing should be incorrect", action)
	}
}

func TestClassifyUnknownAction(t *testing.T) {
	correct, err := Classify(scenario.Phishing, "panic")
	assert.False(t, correct)

	var unknown *UnknownActionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "panic", unknown.Action)
}

func TestCorrectAction(t *testing.T) {
	assert.Equal(t, "report", CorrectAction(scenario.Phishing))
	assert.Equal(t, "correct_safe_action", CorrectAction(scenario.Legitimate))
}
