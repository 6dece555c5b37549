package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vnfeed"
	main "github.com/fwojciec/vnfeed/cmd/vnfeed"
	"github.com/fwojciec/vnfeed/mock"
	"github.com/fwojciec/vnfeed/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"sections", "section", "all", "apk", "kirikiroid2", "emulator"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"blog_id": "1", "timeout": "30s"},
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help returns nil and lists commands", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)

		for _, cmd := range commands {
			assert.Contains(t, stdout.String(), cmd)
		}
	})

	t.Run("no arguments returns error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"bogus"}, stdout, stderr)
		require.Error(t, err)
	})

	t.Run("section defaults to front page", func(t *testing.T) {
		t.Parallel()

		var got vnfeed.SectionQuery
		m := main.NewMain()
		m.Source = &mock.PostSource{
			SectionFn: func(_ context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				got = q
				return &vnfeed.ParseResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"section"}, stdout, stderr)
		require.NoError(t, err)
		assert.Equal(t, vnfeed.SectionQuery{Key: "inicio", StartIndex: 1, MaxResults: 25}, got)
	})

	t.Run("section passes flags through", func(t *testing.T) {
		t.Parallel()

		var got vnfeed.SectionQuery
		m := main.NewMain()
		m.Source = &mock.PostSource{
			SectionFn: func(_ context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				got = q
				return &vnfeed.ParseResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"section", "yuri", "--start", "26", "--max", "10",
			"--published-min", "2021-01-01", "--published-max", "2021-12-31",
		}, stdout, stderr)
		require.NoError(t, err)
		assert.Equal(t, vnfeed.SectionQuery{
			Key:          "yuri",
			StartIndex:   26,
			MaxResults:   10,
			PublishedMin: "2021-01-01",
			PublishedMax: "2021-12-31",
		}, got)
	})

	t.Run("kirikiroid2 command runs by its name", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Source = &mock.PostSource{
			Kirikiroid2SectionFn: func(context.Context) ([]*vnfeed.AndroidPost, error) {
				return []*vnfeed.AndroidPost{{Title: "Fate [Android]", Type: vnfeed.AndroidTypeKirikiroid2}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"kirikiroid2"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Title: Fate [Android]")
	})

	t.Run("help lists kirikiroid2 without hyphen", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "kirikiroid-2")
	})

	t.Run("json flag prints json", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Source = &mock.PostSource{
			Kirikiroid2EmulatorFn: func(context.Context) (string, error) {
				return "https://example.com/k.apk", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--json", "emulator"}, stdout, stderr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"url":"https://example.com/k.apk"}`, stdout.String())
	})

	t.Run("db flag saves posts", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "vnfeed.db")
		m := main.NewMain()
		m.Source = &mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{Posts: []*vnfeed.Post{
					{ID: "42", FullURL: "https://example.com/42.html", Title: "Foo"},
				}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--db", dbPath, "section", "completo"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "saved 1 of 1 posts")

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		post, err := sqlite.NewPostService(db).FindPostByID(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "Foo", post.Title)
	})
}
