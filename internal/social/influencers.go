package social

import (
	"sort"

	"followgraph/internal/analytics"
	"followgraph/internal/model"
)

// Influencers lists every handle in the graph, keys and followed users alike, once each,
// ordered by descending follower count. The order among equal counts is unspecified.
func Influencers(g model.FollowsGraph) []string {
	counts := analytics.FollowerCounts(g)
	users := make([]string, 0, len(counts))
	for h := range counts {
		users = append(users, h)
	}
	sort.Slice(users, func(i, j int) bool { return counts[users[i]] > counts[users[j]] })
	return users
}

// RankInfluencers is Influencers with counts attached and ties broken by handle,
// so the same graph always yields the same report.
func RankInfluencers(g model.FollowsGraph) []model.Influencer {
	return analytics.SortedByCount(analytics.FollowerCounts(g))
}
