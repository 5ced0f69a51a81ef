package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followgraph/internal/config"
)

const fixture = `tweets:
  - id: 1
    author: Alice
    text: "@bob and @charlie let's meet!"
    createdAt: 2016-02-17T10:00:00Z
  - id: 2
    author: dave
    text: "cc @Charlie"
    createdAt: 2016-02-17T11:00:00Z
  - id: 3
    author: erin
    text: "just me @erin"
    createdAt: 2016-02-17T12:00:00Z
`

func run(t *testing.T, fsys afero.Fs, args ...string) (string, error) {
	t.Helper()
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("FOLLOWGRAPH_LOG_FORMAT", "")
	t.Setenv("FOLLOWGRAPH_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := newRootCmd(fsys)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func withFixture(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "tweets.yaml", []byte(fixture), 0o644))
	return fsys
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, withFixture(t), "graph", "--tweets", "tweets.yaml")
	require.NoError(t, err)
	assert.Equal(t, "@alice -> bob, charlie\n@dave -> charlie\n", out)
}

func TestInfluencersCommand(t *testing.T) {
	out, err := run(t, withFixture(t), "influencers", "--tweets", "tweets.yaml")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"1. @charlie followers=2\n"+
		"2. @bob followers=1\n"+
		"3. @alice followers=0\n"+
		"4. @dave followers=0\n", out)

	out, err = run(t, withFixture(t), "influencers", "--tweets", "tweets.yaml", "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, "1. @charlie followers=2\n", out)
}

func TestInfluencersUsesConfigTop(t *testing.T) {
	fsys := withFixture(t)
	cfg := config.Default()
	cfg.Ranking.Top = 2
	require.NoError(t, config.Save(fsys, "conf.yaml", cfg))

	out, err := run(t, fsys, "--config", "conf.yaml", "influencers", "--tweets", "tweets.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1. @charlie followers=2\n2. @bob followers=1\n", out)
}

func TestInitWritesConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	out, err := run(t, fsys, "init", "--path", "cfg/followgraph.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to: cfg/followgraph.yaml")

	cfg, err := config.Load(fsys, "cfg/followgraph.yaml")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Ranking.Top)
}

func TestMissingTweetsFile(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "graph", "--tweets", "nope.yaml")
	assert.Error(t, err)
}

func TestInvalidConfigFails(t *testing.T) {
	fsys := withFixture(t)
	require.NoError(t, afero.WriteFile(fsys, "bad.yaml", []byte("ranking:\n  top: -2\n"), 0o644))
	_, err := run(t, fsys, "--config", "bad.yaml", "graph", "--tweets", "tweets.yaml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVersion(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "followgraph v"+version+"\n", out)
}
