package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/vnfeed"
	main "github.com/fwojciec/vnfeed/cmd/vnfeed"
	"github.com/fwojciec/vnfeed/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(source vnfeed.PostSource) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Source: source,
	}, stdout, stderr
}

func TestSectionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists every section", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)

		require.NoError(t, (&main.SectionsCmd{}).Run(deps))

		for _, s := range vnfeed.Sections {
			assert.Contains(t, stdout.String(), s.Key)
		}
		assert.Contains(t, stdout.String(), "All Ages")
		assert.Contains(t, stdout.String(), "sin h")
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.JSON = true

		require.NoError(t, (&main.SectionsCmd{}).Run(deps))

		var got []vnfeed.Section
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, vnfeed.Sections, got)
	})
}

func TestSectionCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints posts and failures", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{
					Posts: []*vnfeed.Post{{ID: "1", Title: "Sakura", FullURL: "https://example.com/1"}},
					Failures: []vnfeed.ParseFailure{
						{PostID: "2", Err: vnfeed.Errorf(vnfeed.EINVALID, "post 2 has no images")},
					},
				}, nil
			},
		})

		require.NoError(t, (&main.SectionCmd{Key: "yuri"}).Run(deps))

		assert.Contains(t, stdout.String(), "Title: Sakura")
		assert.Contains(t, stdout.String(), "ID: 1")
		assert.Equal(t, "skipped 2: post 2 has no images\n", stderr.String())
	})

	t.Run("prints json array", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{
					Posts: []*vnfeed.Post{{ID: "1", Title: "Sakura", Labels: []string{"Yuri"}}},
				}, nil
			},
		})
		deps.JSON = true

		require.NoError(t, (&main.SectionCmd{Key: "yuri"}).Run(deps))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0]["idPost"])
		assert.Equal(t, "Sakura", got[0]["title"])
	})

	t.Run("empty page prints message", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{}, nil
			},
		})

		require.NoError(t, (&main.SectionCmd{Key: "otome"}).Run(deps))
		assert.Contains(t, stdout.String(), "No posts found.")
	})

	t.Run("unknown section reports error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return nil, vnfeed.Errorf(vnfeed.ENOTFOUND, "section %q not found", q.Key)
			},
		})

		err := (&main.SectionCmd{Key: "nukige"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vnfeed.ENOTFOUND, vnfeed.ErrorCode(err))
		assert.Contains(t, stderr.String(), `section "nukige" not found`)
		assert.Empty(t, stdout.String())
	})

	t.Run("saves posts when store configured", func(t *testing.T) {
		t.Parallel()

		var saved []string
		deps, _, stderr := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{Posts: []*vnfeed.Post{{ID: "1"}, {ID: "2"}}}, nil
			},
		})
		deps.Posts = &mock.PostService{
			SavePostFn: func(_ context.Context, p *vnfeed.Post) (bool, error) {
				saved = append(saved, p.ID)
				return p.ID == "2", nil
			},
		}

		require.NoError(t, (&main.SectionCmd{Key: "eroge"}).Run(deps))

		assert.Equal(t, []string{"1", "2"}, saved)
		assert.Contains(t, stderr.String(), "saved 1 of 2 posts")
	})

	t.Run("save failure stops the command", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.PostSource{
			SectionFn: func(_ context.Context, _ vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{Posts: []*vnfeed.Post{{ID: "1"}}}, nil
			},
		})
		deps.Posts = &mock.PostService{
			SavePostFn: func(context.Context, *vnfeed.Post) (bool, error) {
				return false, errors.New("disk full")
			},
		}

		err := (&main.SectionCmd{Key: "eroge"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Empty(t, stdout.String())
	})
}

func TestAllCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints all posts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.PostSource{
			AllPostsFn: func(context.Context) (*vnfeed.ParseResult, error) {
				return &vnfeed.ParseResult{Posts: []*vnfeed.Post{{ID: "1"}, {ID: "2"}}}, nil
			},
		})

		require.NoError(t, (&main.AllCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "ID: 1")
		assert.Contains(t, stdout.String(), "ID: 2")
	})

	t.Run("reports feed errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.PostSource{
			AllPostsFn: func(context.Context) (*vnfeed.ParseResult, error) {
				return nil, errors.New("connection reset")
			},
		})

		err := (&main.AllCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error")
	})
}
