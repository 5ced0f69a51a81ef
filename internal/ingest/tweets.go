package ingest

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"followgraph/internal/model"
)

// tweetRecord is the on-disk shape of one tweet in a fixture file.
type tweetRecord struct {
	ID        int64     `yaml:"id"`
	Author    string    `yaml:"author"`
	Text      string    `yaml:"text"`
	CreatedAt time.Time `yaml:"createdAt"`
}

type fixture struct {
	Tweets []tweetRecord `yaml:"tweets"`
}

// DecodeTweets reads a YAML document of the form
//
//	tweets:
//	  - id: 1
//	    author: alice
//	    text: "hi @bob"
//	    createdAt: 2016-02-17T10:00:00Z
//
// and builds validated tweets in file order. An empty document yields no tweets.
func DecodeTweets(r io.Reader) ([]*model.Tweet, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode tweets: %w", err)
	}
	out := make([]*model.Tweet, 0, len(f.Tweets))
	for i, rec := range f.Tweets {
		t, err := model.NewTweet(rec.ID, rec.Author, rec.Text, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("tweet #%d (id %d): %w", i, rec.ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// LoadTweets opens path on fs and decodes it with DecodeTweets.
func LoadTweets(fs afero.Fs, path string) ([]*model.Tweet, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tweets, err := DecodeTweets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tweets, nil
}
