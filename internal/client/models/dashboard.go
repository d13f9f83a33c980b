package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DashboardSnapshot is the point-in-time aggregate read backing the admin
// dashboard. The two statistics objects arrive as unordered JSON maps and
// are converted into ordered pair sequences via StatusChangePairs and
// AdminActivityPairs before any rendering math runs.
type DashboardSnapshot struct {
	TotalSuggestions          int64   `json:"totalSuggestions"`
	AnonymousSuggestions      int64   `json:"anonymousSuggestions"`
	OpenSuggestions           int64   `json:"openSuggestions"`
	UnderReviewSuggestions    int64   `json:"underReviewSuggestions"`
	ImplementedSuggestions    int64   `json:"implementedSuggestions"`
	RejectedSuggestions       int64   `json:"rejectedSuggestions"`
	TotalVotes                int64   `json:"totalVotes"`
	UniqueVoters              int64   `json:"uniqueVoters"`
	AverageVotesPerSuggestion float64 `json:"averageVotesPerSuggestion"`
	RecentSuggestions7Days    int64   `json:"recentSuggestions7Days"`
	RecentVotes7Days          int64   `json:"recentVotes7Days"`
	RecentStatusChanges7Days  int64   `json:"recentStatusChanges7Days"`
	TotalEmployees            int64   `json:"totalEmployees"`

	StatusChangeStatistics  map[string]int64 `json:"statusChangeStatistics"`
	AdminActivityStatistics map[string]int64 `json:"adminActivityStatistics"`
}

// CountPair is one (key, count) entry of an aggregate breakdown. Pair
// sequences carry an explicit order so ranking stays reproducible across
// renders, unlike the maps they are derived from.
type CountPair struct {
	Key   string
	Count int64
}

// sortedPairs flattens m into pairs ordered by key ascending. Key order is
// the stable enumeration order later ranking steps preserve on count ties.
func sortedPairs(m map[string]int64) []CountPair {
	pairs := make([]CountPair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, CountPair{Key: k, Count: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// StatusChangePairs returns the per-status change counts in stable key order.
func (d *DashboardSnapshot) StatusChangePairs() []CountPair {
	return sortedPairs(d.StatusChangeStatistics)
}

// AdminActivityPairs returns the per-admin change counts in stable key order.
func (d *DashboardSnapshot) AdminActivityPairs() []CountPair {
	return sortedPairs(d.AdminActivityStatistics)
}

// DecodeDashboardSnapshot unmarshals a dashboard response. Missing numeric
// fields decode to zero, which the zero-floor projection math tolerates.
func DecodeDashboardSnapshot(data []byte) (*DashboardSnapshot, error) {
	var snap DashboardSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding dashboard snapshot: %w", err)
	}
	return &snap, nil
}
