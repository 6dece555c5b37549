package mock

import "github.com/fwojciec/vnfeed"

var (
	_ vnfeed.PostParser       = (*PostParser)(nil)
	_ vnfeed.AndroidExtractor = (*AndroidExtractor)(nil)
)

// PostParser is a mock implementation of vnfeed.PostParser.
type PostParser struct {
	ParsePostFn func(entry *vnfeed.Entry) (*vnfeed.Post, error)
}

func (p *PostParser) ParsePost(entry *vnfeed.Entry) (*vnfeed.Post, error) {
	return p.ParsePostFn(entry)
}

// AndroidExtractor is a mock implementation of vnfeed.AndroidExtractor.
type AndroidExtractor struct {
	ExtractApkFn         func(content string, titles []string) ([]*vnfeed.AndroidPost, error)
	ExtractKirikiroid2Fn func(content string) ([]*vnfeed.AndroidPost, error)
	ExtractEmulatorURLFn func(content string) (string, error)
}

func (e *AndroidExtractor) ExtractApk(content string, titles []string) ([]*vnfeed.AndroidPost, error) {
	return e.ExtractApkFn(content, titles)
}

func (e *AndroidExtractor) ExtractKirikiroid2(content string) ([]*vnfeed.AndroidPost, error) {
	return e.ExtractKirikiroid2Fn(content)
}

func (e *AndroidExtractor) ExtractEmulatorURL(content string) (string, error) {
	return e.ExtractEmulatorURLFn(content)
}
