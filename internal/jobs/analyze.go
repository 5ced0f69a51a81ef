package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"followgraph/internal/analytics"
	"followgraph/internal/config"
	"followgraph/internal/logging"
	"followgraph/internal/metrics"
	"followgraph/internal/model"
	"followgraph/internal/social"
)

// Report is the outcome of one analysis run.
type Report struct {
	RunID   string
	Tweets  int
	Edges   int
	Graph   model.FollowsGraph
	Ranking []model.Influencer
}

// RunAnalysis infers the follows graph from tweets and ranks influencers according to cfg.
// The ranking is truncated to cfg.Ranking.Top entries when set.
func RunAnalysis(ctx context.Context, cfg config.Config, tweets []*model.Tweet) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	start := time.Now()
	runID := uuid.NewString()
	metrics.AnalysisRuns.Inc()

	g := social.GuessFollowsGraphWith(tweets, social.Options{UnicodeHandles: cfg.Mentions.UnicodeHandles})
	ranking := social.RankInfluencers(g)

	edges := 0
	for _, follows := range g {
		edges += len(follows)
	}
	metrics.TweetsScanned.Add(float64(len(tweets)))
	metrics.FollowEdges.Set(float64(edges))
	metrics.RankedUsers.Set(float64(len(ranking)))
	metrics.ObserveAnalysisDuration(start)

	logging.Info("analysis_done", map[string]any{
		"run_id":  runID,
		"tweets":  len(tweets),
		"authors": len(g),
		"edges":   edges,
		"users":   len(ranking),
	})

	return Report{
		RunID:   runID,
		Tweets:  len(tweets),
		Edges:   edges,
		Graph:   g,
		Ranking: analytics.TopN(ranking, cfg.Ranking.Top),
	}, nil
}
