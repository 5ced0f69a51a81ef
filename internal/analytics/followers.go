package analytics

import (
	"sort"

	"followgraph/internal/model"
)

// FollowerCounts counts, for every handle in the graph, how many authors follow it.
// Authors nobody follows are present with a count of zero.
func FollowerCounts(g model.FollowsGraph) map[string]int {
	counts := make(map[string]int, len(g))
	for author, follows := range g {
		if _, ok := counts[author]; !ok {
			counts[author] = 0
		}
		for h := range follows {
			counts[h]++
		}
	}
	return counts
}

// SortedByCount returns the handles of counts ordered by descending count, ties by handle.
func SortedByCount(counts map[string]int) []model.Influencer {
	out := make([]model.Influencer, 0, len(counts))
	for h, n := range counts {
		out = append(out, model.Influencer{Handle: h, Followers: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Followers != out[j].Followers {
			return out[i].Followers > out[j].Followers
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}

// TopN truncates a ranking to n entries; n <= 0 keeps everything.
func TopN(ranked []model.Influencer, n int) []model.Influencer {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
