package mock

import (
	"context"

	"github.com/fwojciec/vnfeed"
)

var (
	_ vnfeed.PostService        = (*PostService)(nil)
	_ vnfeed.AndroidPostService = (*AndroidPostService)(nil)
)

// PostService is a mock implementation of vnfeed.PostService.
type PostService struct {
	SavePostFn     func(ctx context.Context, post *vnfeed.Post) (bool, error)
	FindPostByIDFn func(ctx context.Context, id string) (*vnfeed.Post, error)
	FindPostsFn    func(ctx context.Context, filter vnfeed.PostFilter) ([]*vnfeed.Post, error)
	DeletePostFn   func(ctx context.Context, id string) error
}

func (s *PostService) SavePost(ctx context.Context, post *vnfeed.Post) (bool, error) {
	return s.SavePostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*vnfeed.Post, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPosts(ctx context.Context, filter vnfeed.PostFilter) ([]*vnfeed.Post, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.DeletePostFn(ctx, id)
}

// AndroidPostService is a mock implementation of vnfeed.AndroidPostService.
type AndroidPostService struct {
	ReplaceAndroidPostsFn func(ctx context.Context, typ vnfeed.AndroidType, posts []*vnfeed.AndroidPost) error
	FindAndroidPostsFn    func(ctx context.Context, typ vnfeed.AndroidType) ([]*vnfeed.AndroidPost, error)
}

func (s *AndroidPostService) ReplaceAndroidPosts(ctx context.Context, typ vnfeed.AndroidType, posts []*vnfeed.AndroidPost) error {
	return s.ReplaceAndroidPostsFn(ctx, typ, posts)
}

func (s *AndroidPostService) FindAndroidPosts(ctx context.Context, typ vnfeed.AndroidType) ([]*vnfeed.AndroidPost, error) {
	return s.FindAndroidPostsFn(ctx, typ)
}
