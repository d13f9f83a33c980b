package services

import (
	"fmt"
	"sort"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// Dashboard projections are pure functions over a DashboardSnapshot. No
// aggregate state is cached between renders; every render recomputes from
// the latest snapshot, which is cheap at this size and refresh rate.

// KPI is one headline figure of the dashboard.
type KPI struct {
	Label string
	Value string
}

// BreakdownPart is one segment of the stacked suggestion breakdown. Share
// is the segment's fraction of the whole in [0, 1].
type BreakdownPart struct {
	Label string
	Value int64
	Share float64
}

// BarEntry is one row of a bar list, with Ratio normalized against the
// largest count in [0, 1].
type BarEntry struct {
	Key   string
	Count int64
	Ratio float64
}

// KPIs projects the headline figures in display order.
func KPIs(snap *models.DashboardSnapshot) []KPI {
	return []KPI{
		{Label: "Total Suggestions", Value: fmt.Sprintf("%d", snap.TotalSuggestions)},
		{Label: "Open", Value: fmt.Sprintf("%d", snap.OpenSuggestions)},
		{Label: "Under Review", Value: fmt.Sprintf("%d", snap.UnderReviewSuggestions)},
		{Label: "Implemented", Value: fmt.Sprintf("%d", snap.ImplementedSuggestions)},
		{Label: "Rejected", Value: fmt.Sprintf("%d", snap.RejectedSuggestions)},
		{Label: "Votes", Value: fmt.Sprintf("%d", snap.TotalVotes)},
		{Label: "Unique Voters", Value: fmt.Sprintf("%d", snap.UniqueVoters)},
		{Label: "Avg Votes/Suggestion", Value: fmt.Sprintf("%.1f", snap.AverageVotesPerSuggestion)},
		{Label: "Employees", Value: fmt.Sprintf("%d", snap.TotalEmployees)},
	}
}

// Breakdown projects the stacked suggestion breakdown. The denominator is
// floored at 1 so an all-zero snapshot renders zero-width segments instead
// of dividing by zero.
func Breakdown(snap *models.DashboardSnapshot) []BreakdownPart {
	parts := []BreakdownPart{
		{Label: "Open", Value: snap.OpenSuggestions},
		{Label: "Under Review", Value: snap.UnderReviewSuggestions},
		{Label: "Implemented", Value: snap.ImplementedSuggestions},
		{Label: "Rejected", Value: snap.RejectedSuggestions},
		{Label: "Anonymous", Value: snap.AnonymousSuggestions},
	}

	var total int64
	for _, p := range parts {
		total += p.Value
	}
	if total < 1 {
		total = 1
	}
	for i := range parts {
		parts[i].Share = float64(parts[i].Value) / float64(total)
	}
	return parts
}

// StatusChangeBars projects the per-status change counts as a bar list
// normalized against the largest count, with the same zero floor.
func StatusChangeBars(snap *models.DashboardSnapshot) []BarEntry {
	pairs := snap.StatusChangePairs()

	var max int64 = 1
	for _, p := range pairs {
		if p.Count > max {
			max = p.Count
		}
	}

	entries := make([]BarEntry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, BarEntry{
			Key:   p.Key,
			Count: p.Count,
			Ratio: float64(p.Count) / float64(max),
		})
	}
	return entries
}

// AdminActivityRanking ranks admins by change count descending. The sort is
// stable: ties keep the enumeration order of the underlying pair sequence.
func AdminActivityRanking(snap *models.DashboardSnapshot) []models.CountPair {
	pairs := snap.AdminActivityPairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	return pairs
}
