package collection

import "math"

// DigestSize is how many entries the condensed "recent digest" view shows.
// It is a presentation rule, not a data-model limit.
const DigestSize = 10

// Stats are the community feed aggregates computed across all users.
type Stats struct {
	TotalGames          int `json:"totalGames"`
	UniqueUsers         int `json:"uniqueUsers"`
	AverageGamesPerUser int `json:"averageGamesPerUser"`
}

// ComputeStats aggregates the full set of logged entries across all users.
// The average rounds half-up and is 0 when there are no users.
func ComputeStats(entries []Entry) Stats {
	users := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		users[e.OwnerEmail] = struct{}{}
	}

	stats := Stats{
		TotalGames:  len(entries),
		UniqueUsers: len(users),
	}
	if stats.UniqueUsers > 0 {
		stats.AverageGamesPerUser = int(math.Round(float64(stats.TotalGames) / float64(stats.UniqueUsers)))
	}
	return stats
}

// Digest truncates an already-ordered feed to the first DigestSize entries.
func Digest(entries []Entry) []Entry {
	if len(entries) <= DigestSize {
		return entries
	}
	return entries[:DigestSize]
}
