package ranking

// Weights are the five factor weights in whole percentage points. Keeping them
// integral makes "weights sum to 1.0" an exact check (Total() == 100).
type Weights struct {
	Skill         int
	Education     int
	Certification int
	Experience    int
	Project       int
}

// DefaultWeights are the fixed scoring weights: 0.50 / 0.20 / 0.10 / 0.15 / 0.05.
var DefaultWeights = Weights{
	Skill:         50,
	Education:     20,
	Certification: 10,
	Experience:    15,
	Project:       5,
}

// Total returns the sum of all weights in percentage points.
func (w Weights) Total() int {
	return w.Skill + w.Education + w.Certification + w.Experience + w.Project
}
