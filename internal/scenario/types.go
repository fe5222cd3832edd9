package scenario

// Type is the delivery channel of a simulated attack.
type Type string

const (
	TypeEmail      Type = "email"
	TypeSMS        Type = "sms"
	TypeWebsite    Type = "website"
	TypeSocial     Type = "social"
	TypeVoice      Type = "voice"
	TypeQRCode     Type = "qrcode"
	TypeRansomware Type = "ransomware"
)

// Difficulty of a scenario.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns all difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty validates a difficulty string from a request.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), true
	}
	return "", false
}

// Answer is the ground-truth label of a scenario.
type Answer string

const (
	Phishing   Answer = "phishing"
	Legitimate Answer = "legitimate"
)

// AnalysisHints are authored hints consumed by the feedback fallback.
type AnalysisHints struct {
	ThreatLevel     string `json:"threatLevel"`
	AttackVector    string `json:"attackVector,omitempty"`
	RealWorldImpact string `json:"realWorldImpact,omitempty"`
}

// Scenario is one authored unit of simulated-attack content.
// The selector only ever touches ID, Type, Difficulty and Answer;
// Content is opaque to it and rendered by the client.
type Scenario struct {
	ID              string         `json:"id"`
	Type            Type           `json:"type"`
	Difficulty      Difficulty     `json:"difficulty"`
	Answer          Answer         `json:"correctAnswer"`
	Title           string         `json:"title"`
	Content         Content        `json:"content"`
	Explanation     string         `json:"explanation"`
	RedFlags        []string       `json:"redFlags,omitempty"`
	TrustIndicators []string       `json:"trustIndicators,omitempty"`
	Hints           *AnalysisHints `json:"aiAnalysisHints,omitempty"`
}
