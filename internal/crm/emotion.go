package crm

// Emotion labels produced by the score classifier. The presentation layer
// defines colors for a wider palette (Interest, Curiosity, Focus, ...)
// that the current backend data can never produce; only these three are
// reachable from an emotion score.
const (
	EmotionHappiness   = "Happiness"
	EmotionFrustration = "Frustration"
	EmotionNeutral     = "Neutral"
)

// Classification thresholds for the emotion score, which ranges from
// -1.0 (negative) to 1.0 (positive). Scores exactly at a threshold
// classify as Neutral.
const (
	happinessThreshold   = 0.3
	frustrationThreshold = -0.3
)

// ClassifyEmotion buckets an emotion score into one of the three labels.
func ClassifyEmotion(score float64) string {
	switch {
	case score > happinessThreshold:
		return EmotionHappiness
	case score < frustrationThreshold:
		return EmotionFrustration
	default:
		return EmotionNeutral
	}
}
