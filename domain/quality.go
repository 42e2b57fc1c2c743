package domain

import "math"

// QualityLevel is one of the eleven labeled bands partitioning the score axis
type QualityLevel string

const (
	QualityExcellent QualityLevel = "excellent"
	QualityGood      QualityLevel = "good"
	QualityAverage   QualityLevel = "average"
	QualityPoor      QualityLevel = "poor"
	QualityBad       QualityLevel = "bad"
	QualityTerrible  QualityLevel = "terrible"
	QualityHorrible  QualityLevel = "horrible"
	QualityDisaster  QualityLevel = "disaster"
	QualityNuclear   QualityLevel = "nuclear"
	QualityLegendary QualityLevel = "legendary"
	QualityUltimate  QualityLevel = "ultimate"
)

// qualityBand is a closed-open interval [Min, Max) over the score axis.
// The final band is open-ended above.
type qualityBand struct {
	Min   float64
	Max   float64
	Level QualityLevel
}

var qualityBands = []qualityBand{
	{0, 5, QualityExcellent},
	{5, 15, QualityGood},
	{15, 25, QualityAverage},
	{25, 40, QualityPoor},
	{40, 55, QualityBad},
	{55, 65, QualityTerrible},
	{65, 75, QualityHorrible},
	{75, 85, QualityDisaster},
	{85, 95, QualityNuclear},
	{95, 100, QualityLegendary},
	{100, math.Inf(1), QualityUltimate},
}

// LevelForScore maps a composite score onto its quality band. Scores are
// unbounded above; exactly 100 falls into the final open-ended band.
// A negative or NaN score lands in no band and reports an internal error.
func LevelForScore(score float64) (QualityLevel, error) {
	if math.IsNaN(score) || score < 0 {
		return "", NewInternalError("score outside quality band range", nil)
	}
	for _, band := range qualityBands {
		if score >= band.Min && score < band.Max {
			return band.Level, nil
		}
	}
	// The final band covers [100, +Inf), so this is unreachable for any
	// non-negative finite score. +Inf itself is an aggregation bug.
	return "", NewInternalError("score outside quality band range", nil)
}
