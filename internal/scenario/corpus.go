package scenario

import "fmt"

// Corpus is the static, in-memory scenario table, indexed by id and
// by (difficulty, answer) bucket. It is assembled once at startup and
// never mutated afterwards.
type Corpus struct {
	byID    map[string]*Scenario
	buckets map[Difficulty]map[Answer][]*Scenario
}

// NewCorpus indexes the given scenarios. It rejects duplicate ids and
// records whose payload does not match their declared channel. Bucket
// coverage is checked separately by Validate so that partial corpora
// can still be built for tooling.
func NewCorpus(scenarios []*Scenario) (*Corpus, error) {
	c := &Corpus{
		byID:    make(map[string]*Scenario, len(scenarios)),
		buckets: make(map[Difficulty]map[Answer][]*Scenario),
	}
	for _, d := range Difficulties() {
		c.buckets[d] = map[Answer][]*Scenario{}
	}

	for _, s := range scenarios {
		if s.ID == "" {
			return nil, fmt.Errorf("scenario with empty id (title %q)", s.Title)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario id %q", s.ID)
		}
		if _, ok := c.buckets[s.Difficulty]; !ok {
			return nil, fmt.Errorf("scenario %s: unknown difficulty %q", s.ID, s.Difficulty)
		}
		if s.Answer != Phishing && s.Answer != Legitimate {
			return nil, fmt.Errorf("scenario %s: unknown answer %q", s.ID, s.Answer)
		}
		if s.Content == nil {
			return nil, fmt.Errorf("scenario %s: missing content", s.ID)
		}
		if got := s.Content.Channel(); got != s.Type {
			return nil, fmt.Errorf("scenario %s: content is %s but type is %s", s.ID, got, s.Type)
		}
		c.byID[s.ID] = s
		c.buckets[s.Difficulty][s.Answer] = append(c.buckets[s.Difficulty][s.Answer], s)
	}
	return c, nil
}

// Validate checks the authoring invariant the selector relies on:
// every (difficulty, answer) bucket holds at least one scenario.
func (c *Corpus) Validate() error {
	for _, d := range Difficulties() {
		for _, a := range []Answer{Phishing, Legitimate} {
			if len(c.buckets[d][a]) == 0 {
				return fmt.Errorf("corpus bucket (%s, %s) is empty", d, a)
			}
		}
	}
	return nil
}

// ByID looks up a scenario.
func (c *Corpus) ByID(id string) (*Scenario, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Pool returns every scenario of the given difficulty, both labels.
// The returned slice is freshly allocated and safe to reorder.
func (c *Corpus) Pool(d Difficulty) []*Scenario {
	phish := c.buckets[d][Phishing]
	legit := c.buckets[d][Legitimate]
	pool := make([]*Scenario, 0, len(phish)+len(legit))
	pool = append(pool, phish...)
	pool = append(pool, legit...)
	return pool
}

// Bucket returns the scenarios for one (difficulty, answer) bucket.
func (c *Corpus) Bucket(d Difficulty, a Answer) []*Scenario {
	return c.buckets[d][a]
}

// Len is the total number of scenarios.
func (c *Corpus) Len() int { return len(c.byID) }

// Summary reports corpus counts, used by the dashboard.
type Summary struct {
	Total      int                `json:"total"`
	Phishing   int                `json:"phishing"`
	Legitimate int                `json:"legitimate"`
	ByBucket   map[Difficulty]int `json:"byDifficulty"`
}

func (c *Corpus) Summarize() Summary {
	sum := Summary{ByBucket: map[Difficulty]int{}}
	for _, d := range Difficulties() {
		p := len(c.buckets[d][Phishing])
		l := len(c.buckets[d][Legitimate])
		sum.Phishing += p
		sum.Legitimate += l
		sum.ByBucket[d] = p + l
	}
	sum.Total = sum.Phishing + sum.Legitimate
	return sum
}
