package feedback

import "RapidCapture_SecurityTrainer/internal/scenario"

// Fallback builds a deterministic analysis from the scenario's authored
// explanation and indicators, so the user always sees some feedback even
// when the remote analyzer is down.
func Fallback(sc *scenario.Scenario, isCorrect bool) *Analysis {
	a := &Analysis{
		ThreatLevel:     fallbackThreatLevel(sc),
		RealWorldImpact: "Falling for this type of attack could lead to credential theft, data breaches, or financial loss.",
	}

	if isCorrect {
		a.Feedback = "Correct. " + sc.Explanation
	} else {
		a.Feedback = "Not quite. " + sc.Explanation
	}

	switch {
	case sc.Answer == scenario.Phishing && len(sc.RedFlags) > 0:
		a.Tips = sc.RedFlags
	case sc.Answer == scenario.Legitimate && len(sc.TrustIndicators) > 0:
		a.Tips = sc.TrustIndicators
	default:
		a.Tips = []string{
			"Check sender addresses and domains carefully",
			"Never act on urgency alone",
			"Report suspicious messages to IT",
		}
	}

	if sc.Answer == scenario.Legitimate {
		a.RealWorldImpact = "Treating legitimate requests as threats slows you down; the skill is telling the two apart."
	} else if sc.Hints != nil && sc.Hints.RealWorldImpact != "" {
		a.RealWorldImpact = sc.Hints.RealWorldImpact
	}

	return a
}

func fallbackThreatLevel(sc *scenario.Scenario) string {
	if sc.Hints != nil && sc.Hints.ThreatLevel != "" {
		return sc.Hints.ThreatLevel
	}
	switch sc.Difficulty {
	case scenario.Hard:
		return "critical"
	case scenario.Medium:
		return "high"
	}
	return "medium"
}
