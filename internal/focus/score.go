package focus

import "math"

const (
	basePenalty      = 5.0
	maxLengthPenalty = 5.0
	// minutes of session length that add one point to the per-interruption
	// penalty
	penaltyMinutesStep = 15.0
)

// Score computes the focus score of a session in the range [0, 100].
//
// The focus percentage is the share of the session not spent paused. Each
// interruption then costs 5 points plus one point per 15 minutes of session
// length, capped at 5 extra points. The result is clamped before rounding.
func Score(totalSeconds, interruptions, pauseSeconds int) int {
	if totalSeconds <= 0 {
		return 0
	}

	actual := math.Max(0, float64(totalSeconds-pauseSeconds))
	percentage := actual / float64(totalSeconds) * 100
	minutes := float64(totalSeconds) / 60

	penalty := float64(interruptions) *
		(basePenalty + math.Min(maxLengthPenalty, minutes/penaltyMinutesStep))

	score := math.Min(100, math.Max(0, percentage-penalty))

	return int(math.Round(score))
}
