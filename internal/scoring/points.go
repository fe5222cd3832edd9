// Package scoring converts a user's response into a verdict and a point
// delta, decoupled from scenario selection.
package scoring

import "RapidCapture_SecurityTrainer/internal/scenario"

// IncorrectPenalty is flat across difficulties: guessing is discouraged
// without punishing the choice to attempt harder content.
const IncorrectPenalty = -5

var correctPoints = map[scenario.Difficulty]int{
	scenario.Easy:   10,
	scenario.Medium: 20,
	scenario.Hard:   30,
}

// Points returns the base score delta for a completed scenario.
func Points(d scenario.Difficulty, isCorrect bool) int {
	if !isCorrect {
		return IncorrectPenalty
	}
	return correctPoints[d]
}

// TimeBonus rewards quick correct answers: +5 under 30 seconds, +2 under
// a minute, nothing otherwise. Incorrect answers never earn a bonus.
func TimeBonus(isCorrect bool, seconds int) int {
	switch {
	case !isCorrect:
		return 0
	case seconds < 30:
		return 5
	case seconds < 60:
		return 2
	}
	return 0
}
