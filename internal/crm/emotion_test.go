package crm

import "testing"

func TestClassifyEmotion(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.5, EmotionHappiness},
		{-0.5, EmotionFrustration},
		{0.1, EmotionNeutral},
		{0, EmotionNeutral},
		// Thresholds are strict inequalities.
		{0.3, EmotionNeutral},
		{-0.3, EmotionNeutral},
		{0.31, EmotionHappiness},
		{-0.31, EmotionFrustration},
		{1.0, EmotionHappiness},
		{-1.0, EmotionFrustration},
	}

	for _, tc := range cases {
		if got := ClassifyEmotion(tc.score); got != tc.want {
			t.Errorf("ClassifyEmotion(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
