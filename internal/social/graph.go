package social

import (
	"followgraph/internal/model"
	"followgraph/internal/util"
)

// Options tunes how mentions are recognized.
type Options struct {
	// UnicodeHandles accepts non-ASCII letters and digits inside a handle.
	UnicodeHandles bool
}

// GuessFollowsGraph infers who follows whom from @-mentions, using ASCII handles.
func GuessFollowsGraph(tweets []*model.Tweet) model.FollowsGraph {
	return GuessFollowsGraphWith(tweets, Options{})
}

// GuessFollowsGraphWith treats every @-mention in a tweet as evidence that its author
// follows the mentioned handle. Handles are lowercased, self-mentions are dropped and an
// author's mentions are merged across all of its tweets. Authors without any surviving
// mention are absent from the result.
func GuessFollowsGraphWith(tweets []*model.Tweet, opts Options) model.FollowsGraph {
	scanner := util.NewMentionScanner(opts.UnicodeHandles)
	g := make(model.FollowsGraph)
	for _, t := range tweets {
		if t == nil {
			continue
		}
		author := scanner.Lower(t.Author())
		for _, h := range scanner.Scan(t.Text()) {
			if h == author {
				continue
			}
			g.Follow(author, h)
		}
	}
	return g
}
