package scoring

import (
	"fmt"

	"RapidCapture_SecurityTrainer/internal/scenario"
)

// UnknownActionError marks an action tag outside the vocabulary the
// presentation components emit. The attempt still scores as incorrect;
// the raw tag is kept for a later corpus/UI audit.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action tag %q", e.Action)
}

// disengageActions mean "flag / ignore / walk away": the right move on a
// phishing scenario, the wrong one on a legitimate request.
var disengageActions = map[string]struct{}{
	"report":            {},
	"report_phishing":   {},
	"hangup":            {},
	"close":             {},
	"close_page":        {},
	"ignore":            {},
	"delete":            {},
	"delete_email":      {},
	"leave":             {},
	"block":             {},
	"disconnect_report": {},
}

// engageActions mean "interact with the content as asked": correct only
// when the scenario is legitimate. correct_safe_action and task_complete
// are the tags legitimate-flow components emit for completed tasks.
var engageActions = map[string]struct{}{
	"click_link":          {},
	"link_click":          {},
	"scan":                {},
	"submit_credentials":  {},
	"enter_credentials":   {},
	"pay":                 {},
	"pay_ransom":          {},
	"call":                {},
	"call_number":         {},
	"reply":               {},
	"reply_email":         {},
	"forward":             {},
	"answer":              {},
	"share":               {},
	"download":            {},
	"open_attachment":     {},
	"correct_safe_action": {},
	"task_complete":       {},
}

// Classify maps the ground-truth label and a user action tag to a
// correctness verdict. It is total: unknown tags come back incorrect
// together with an *UnknownActionError for the caller to log.
func Classify(answer scenario.Answer, action string) (bool, error) {
	if _, ok := disengageActions[action]; ok {
		return answer == scenario.Phishing, nil
	}
	if _, ok := engageActions[action]; ok {
		return answer == scenario.Legitimate, nil
	}
	return false, &UnknownActionError{Action: action}
}

// CorrectAction names the action that would have been right, for the
// feedback request.
func CorrectAction(answer scenario.Answer) string {
	if answer == scenario.Phishing {
		return "report"
	}
	return "correct_safe_action"
}
