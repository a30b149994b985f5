// Package achievements watches session events and grants currency rewards
// when progress thresholds are met.
package achievements

// Metric identifies the session quantity an achievement tracks.
type Metric string

const (
	MetricScore        Metric = "score"          // peak session score
	MetricComboPeak    Metric = "combo-peak"     // best combo ever reached
	MetricWordsLearned Metric = "words-learned"  // cumulative correct answers
	MetricSessions     Metric = "sessions"       // cumulative finished sessions
	MetricWins         Metric = "wins"           // cumulative sessions won
)

// CombineRule says how a new observation folds into stored progress.
type CombineRule int

const (
	// CombineMax keeps the highest observed value. Peak metrics must not be
	// inflated by repeated small observations.
	CombineMax CombineRule = iota

	// CombineSum accumulates deltas across sessions.
	CombineSum
)

// Rule returns the combine rule for a metric.
func (m Metric) Rule() CombineRule {
	switch m {
	case MetricScore, MetricComboPeak:
		return CombineMax
	default:
		return CombineSum
	}
}

// Achievement is one trackable record. Completed flips false -> true exactly
// once, paying out Reward; it never reverts.
type Achievement struct {
	ID        string
	Name      string
	Metric    Metric
	Target    int
	Reward    int // coins credited on completion
	Progress  int
	Completed bool
}

// Defaults returns the built-in achievement set in display order.
func Defaults() []*Achievement {
	return []*Achievement{
		{ID: "first-win", Name: "First Victory", Metric: MetricWins, Target: 1, Reward: 250},
		{ID: "combo-10", Name: "Combo Artist", Metric: MetricComboPeak, Target: 10, Reward: 150},
		{ID: "score-5000", Name: "High Roller", Metric: MetricScore, Target: 5000, Reward: 500},
		{ID: "words-100", Name: "Century Club", Metric: MetricWordsLearned, Target: 100, Reward: 300},
		{ID: "sessions-25", Name: "Regular", Metric: MetricSessions, Target: 25, Reward: 400},
		{ID: "words-500", Name: "Word Hoarder", Metric: MetricWordsLearned, Target: 500, Reward: 1000},
	}
}
