package model

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidTweet is returned when a Tweet is constructed without a required field.
var ErrInvalidTweet = errors.New("invalid tweet")

var validate = validator.New()

// Tweet is an immutable authored message. Build it with NewTweet.
type Tweet struct {
	id        int64
	author    string
	text      string
	createdAt time.Time
}

// tweetFields mirrors Tweet with exported fields so the validator can see them.
type tweetFields struct {
	Author    string    `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}

// NewTweet validates its arguments and returns a Tweet owning a copy of createdAt.
// The author and timestamp are required; text may be empty.
func NewTweet(id int64, author, text string, createdAt time.Time) (*Tweet, error) {
	if err := validate.Struct(tweetFields{Author: author, CreatedAt: createdAt}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTweet, err)
	}
	return &Tweet{
		id:        id,
		author:    author,
		text:      text,
		createdAt: createdAt.Round(0),
	}, nil
}

// ID is informational only.
func (t *Tweet) ID() int64 { return t.id }

func (t *Tweet) Author() string { return t.author }

func (t *Tweet) Text() string { return t.text }

// CreatedAt returns a copy of the creation time.
func (t *Tweet) CreatedAt() time.Time { return t.createdAt }

// HandleSet is an unordered set of lowercase handles.
type HandleSet map[string]struct{}

// NewHandleSet returns a set holding the given handles.
func NewHandleSet(handles ...string) HandleSet {
	s := make(HandleSet, len(handles))
	for _, h := range handles {
		s.Add(h)
	}
	return s
}

func (s HandleSet) Add(handle string) { s[handle] = struct{}{} }

func (s HandleSet) Has(handle string) bool {
	_, ok := s[handle]
	return ok
}

// Sorted returns the members in ascending order.
func (s HandleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// FollowsGraph maps an author to the handles it is inferred to follow.
type FollowsGraph map[string]HandleSet

// Follow records that author follows handle, creating the author's set on first use.
func (g FollowsGraph) Follow(author, handle string) {
	set, ok := g[author]
	if !ok {
		set = make(HandleSet)
		g[author] = set
	}
	set.Add(handle)
}

// Authors returns the graph keys in ascending order.
func (g FollowsGraph) Authors() []string {
	out := make([]string, 0, len(g))
	for a := range g {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Influencer pairs a handle with its inferred follower count.
type Influencer struct {
	Handle    string
	Followers int
}
