package gofeed_test

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/fwojciec/vnfeed"
	"github.com/fwojciec/vnfeed/gofeed"
	"github.com/fwojciec/vnfeed/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/posts.xml")
	require.NoError(t, err)
	return string(b)
}

func TestFeedService_FeedURL(t *testing.T) {
	t.Parallel()

	svc := gofeed.NewFeedService(nil, "123")

	t.Run("unfiltered query has no category path", func(t *testing.T) {
		t.Parallel()

		got := svc.FeedURL(vnfeed.FeedQuery{})
		assert.Equal(t, "https://www.blogger.com/feeds/123/posts/default", got)
	})

	t.Run("escapes category path segment", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse(svc.FeedURL(vnfeed.FeedQuery{Category: "sin h"}))
		require.NoError(t, err)
		assert.Equal(t, "/feeds/123/posts/default/-/sin h", u.Path)
		assert.Contains(t, u.String(), "/-/sin%20h")
	})

	t.Run("sets paging and date bounds", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse(svc.FeedURL(vnfeed.FeedQuery{
			Category:     "yuri",
			StartIndex:   26,
			MaxResults:   25,
			PublishedMin: "2021-01-01",
			PublishedMax: "2021-12-31",
		}))
		require.NoError(t, err)

		q := u.Query()
		assert.Equal(t, "26", q.Get("start-index"))
		assert.Equal(t, "25", q.Get("max-results"))
		assert.Equal(t, "2021-01-01T00:00:00-05:00", q.Get("published-min"))
		assert.Equal(t, "2021-12-31T00:00:00-05:00", q.Get("published-max"))
	})

	t.Run("honors options", func(t *testing.T) {
		t.Parallel()

		custom := gofeed.NewFeedService(nil, "9",
			gofeed.WithBaseURL("http://localhost:8080/feeds/"),
			gofeed.WithPublishedOffset("+00:00"),
		)

		u, err := url.Parse(custom.FeedURL(vnfeed.FeedQuery{PublishedMin: "2022-02-02"}))
		require.NoError(t, err)
		assert.Equal(t, "localhost:8080", u.Host)
		assert.Equal(t, "/feeds/9/posts/default", u.Path)
		assert.Equal(t, "2022-02-02T00:00:00+00:00", u.Query().Get("published-min"))
	})
}

func TestFeedService_Entries(t *testing.T) {
	t.Parallel()

	t.Run("maps atom entries", func(t *testing.T) {
		t.Parallel()

		body := loadFixture(t)
		var requested string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, u string) (string, error) {
				requested = u
				return body, nil
			},
		}
		svc := gofeed.NewFeedService(fetcher, gofeed.DefaultBlogID)

		entries, err := svc.Entries(context.Background(), vnfeed.FeedQuery{Category: "yuri", StartIndex: 1, MaxResults: 25})

		require.NoError(t, err)
		assert.Contains(t, requested, "/feeds/6976968703909484667/posts/default/-/yuri")
		require.Len(t, entries, 2)

		e := entries[0]
		assert.Equal(t, "tag:blogger.com,1999:blog-6976968703909484667.post-8812345", e.ID)
		assert.Equal(t, "Sakura Maid", e.Title)
		assert.Equal(t, []string{"yuri", "Completo"}, e.Categories)
		assert.Equal(t, "2021-05-01T10:00:00.000-05:00", e.Published)
		assert.Equal(t, "2021-06-02T22:15:00.000-05:00", e.Updated)
		assert.Contains(t, e.Content, `<img src="https://img/c.jpg"`)
		assert.Contains(t, e.Content, "Imágenes:")

		require.Len(t, e.Links, 5)
		assert.Equal(t, "alternate", e.Links[vnfeed.AlternateLinkIndex].Rel)
		assert.Equal(t, "http://www.visualnovelparapc.com/2021/05/sakura-maid.html", e.Links[vnfeed.AlternateLinkIndex].Href)
		assert.Equal(t, "replies", e.Links[0].Rel)
	})

	t.Run("returns empty slice for feed without entries", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return `<?xml version='1.0' encoding='UTF-8'?><feed xmlns='http://www.w3.org/2005/Atom'><title>x</title></feed>`, nil
			},
		}
		svc := gofeed.NewFeedService(fetcher, "1")

		entries, err := svc.Entries(context.Background(), vnfeed.FeedQuery{StartIndex: 501})

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		svc := gofeed.NewFeedService(fetcher, "1")

		_, err := svc.Entries(context.Background(), vnfeed.FeedQuery{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("returns error for malformed feed", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html>not a feed", nil
			},
		}
		svc := gofeed.NewFeedService(fetcher, "1")

		_, err := svc.Entries(context.Background(), vnfeed.FeedQuery{})

		require.Error(t, err)
	})

	t.Run("rejects invalid query without fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}
		svc := gofeed.NewFeedService(fetcher, "1")

		_, err := svc.Entries(context.Background(), vnfeed.FeedQuery{PublishedMin: "May 1st"})

		require.Error(t, err)
		assert.Equal(t, vnfeed.EINVALID, vnfeed.ErrorCode(err))
	})
}
