package storage

// Profile is the lifetime aggregate for a user, separate from the
// per-session stats the drill loop tracks.
type Profile struct {
	TotalScore         int `json:"totalScore"`
	ScenariosAttempted int `json:"scenariosAttempted"`
	ScenariosCorrect   int `json:"scenariosCorrect"`
}

// AccumulateProfile folds one answered scenario into the user's profile.
func AccumulateProfile(username string, scoreDelta int, isCorrect bool) error {
	userID, err := GetUserIDByUsername(username)
	if err != nil {
		return err
	}
	correct := 0
	if isCorrect {
		correct = 1
	}
	_, err = db.Exec(
		`UPDATE profiles
		 SET total_score = total_score + ?,
		     scenarios_attempted = scenarios_attempted + 1,
		     scenarios_correct = scenarios_correct + ?
		 WHERE user_id = ?`,
		scoreDelta, correct, userID,
	)
	return err
}

// GetProfile returns the lifetime aggregate for a user.
func GetProfile(username string) (Profile, error) {
	var profile Profile
	userID, err := GetUserIDByUsername(username)
	if err != nil {
		return profile, err
	}
	row := db.QueryRow(
		"SELECT total_score, scenarios_attempted, scenarios_correct FROM profiles WHERE user_id = ?",
		userID,
	)
	if err := row.Scan(&profile.TotalScore, &profile.ScenariosAttempted, &profile.ScenariosCorrect); err != nil {
		return profile, err
	}
	return profile, nil
}
