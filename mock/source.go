package mock

import (
	"context"

	"github.com/fwojciec/vnfeed"
)

var _ vnfeed.PostSource = (*PostSource)(nil)

// PostSource is a mock implementation of vnfeed.PostSource.
type PostSource struct {
	SectionFn             func(ctx context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error)
	AllPostsFn            func(ctx context.Context) (*vnfeed.ParseResult, error)
	ApkSectionFn          func(ctx context.Context) ([]*vnfeed.AndroidPost, error)
	Kirikiroid2SectionFn  func(ctx context.Context) ([]*vnfeed.AndroidPost, error)
	Kirikiroid2EmulatorFn func(ctx context.Context) (string, error)
}

func (s *PostSource) Section(ctx context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
	return s.SectionFn(ctx, q)
}

func (s *PostSource) AllPosts(ctx context.Context) (*vnfeed.ParseResult, error) {
	return s.AllPostsFn(ctx)
}

func (s *PostSource) ApkSection(ctx context.Context) ([]*vnfeed.AndroidPost, error) {
	return s.ApkSectionFn(ctx)
}

func (s *PostSource) Kirikiroid2Section(ctx context.Context) ([]*vnfeed.AndroidPost, error) {
	return s.Kirikiroid2SectionFn(ctx)
}

func (s *PostSource) Kirikiroid2Emulator(ctx context.Context) (string, error) {
	return s.Kirikiroid2EmulatorFn(ctx)
}
