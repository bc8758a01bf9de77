// Package metrics computes derived client statistics. Everything here is
// a pure function over assembled crm data: no I/O, deterministic, total.
// The list and profile pages both draw from this package so the formulas
// exist exactly once.
package metrics

import (
	"math"
	"sort"

	"github.com/saleslens-dev/saleslens/internal/crm"
)

// NoDominantEmotion is returned when no non-neutral emotions exist.
const NoDominantEmotion = "N/A"

// Streak counts the consecutive most-recent successful meetings, stopping
// at the first failure when sorted by date descending. Empty input gives 0.
func Streak(meetings []crm.Meeting) int {
	sorted := make([]crm.Meeting, len(meetings))
	copy(sorted, meetings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	streak := 0
	for _, m := range sorted {
		if !m.IsSuccessful {
			break
		}
		streak++
	}
	return streak
}

// SuccessRate returns round(100 * successful / total), and 0 for no
// meetings.
func SuccessRate(meetings []crm.Meeting) int {
	if len(meetings) == 0 {
		return 0
	}
	successes := 0
	for _, m := range meetings {
		if m.IsSuccessful {
			successes++
		}
	}
	return int(math.Round(100 * float64(successes) / float64(len(meetings))))
}

// AverageEngagement returns round(100 * mean engagement) over snapshots
// with a known engagement reading. Snapshots whose reading is unknown are
// skipped; when none are known the result is 0.
func AverageEngagement(emotions []crm.EmotionSnapshot) int {
	sum := 0.0
	known := 0
	for _, e := range emotions {
		if !e.EngagementKnown {
			continue
		}
		sum += e.Engagement
		known++
	}
	if known == 0 {
		return 0
	}
	return int(math.Round(100 * sum / float64(known)))
}

// DominantEmotion returns the most frequent non-neutral emotion label.
// Ties break toward the label encountered first in the input. Returns
// NoDominantEmotion when only neutral (or no) emotions exist.
func DominantEmotion(emotions []crm.EmotionSnapshot) string {
	counts := make(map[string]int)
	var order []string
	for _, e := range emotions {
		if e.Label == crm.EmotionNeutral {
			continue
		}
		if _, seen := counts[e.Label]; !seen {
			order = append(order, e.Label)
		}
		counts[e.Label]++
	}
	if len(order) == 0 {
		return NoDominantEmotion
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order[0]
}

// AllEmotions flattens the emotion snapshots of every meeting, in meeting
// order.
func AllEmotions(meetings []crm.Meeting) []crm.EmotionSnapshot {
	var all []crm.EmotionSnapshot
	for _, m := range meetings {
		all = append(all, m.Emotions...)
	}
	return all
}

// Overview is the summary strip shown above the client list.
type Overview struct {
	Clients     int
	Meetings    int
	Successful  int
	SuccessRate int // round(100 * Successful / Meetings), 0 when empty
}

// Overall aggregates the list-page summary across all clients.
func Overall(clients []crm.Client) Overview {
	o := Overview{Clients: len(clients)}
	for _, c := range clients {
		o.Meetings += len(c.Meetings)
		for _, m := range c.Meetings {
			if m.IsSuccessful {
				o.Successful++
			}
		}
	}
	if o.Meetings > 0 {
		o.SuccessRate = int(math.Round(100 * float64(o.Successful) / float64(o.Meetings)))
	}
	return o
}
