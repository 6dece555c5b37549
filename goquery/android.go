package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vnfeed"
)

var titleRe = regexp.MustCompile(tagRun)

// Ensure AndroidExtractor implements vnfeed.AndroidExtractor at compile time.
var _ vnfeed.AndroidExtractor = (*AndroidExtractor)(nil)

// AndroidExtractor extracts records from the Android section posts.
type AndroidExtractor struct{}

// NewAndroidExtractor creates a new AndroidExtractor.
func NewAndroidExtractor() *AndroidExtractor {
	return &AndroidExtractor{}
}

// ExtractApk pairs titles with every image and every "Apk" link of the
// apk section post, by position.
func (e *AndroidExtractor) ExtractApk(content string, titles []string) ([]*vnfeed.AndroidPost, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return nil, err
	}

	covers := imageSources(doc.Selection)
	urls := linksWithText(doc.Selection, vnfeed.ApkLinkText)

	return zipAligned(vnfeed.AndroidTypeApk, titles, urls, covers)
}

// ExtractKirikiroid2 reads titles from the underlined runs of the
// Kirikiroid2 section post and pairs them with the images (minus the first,
// which is the section banner) and the "Mediafire" links, by position.
func (e *AndroidExtractor) ExtractKirikiroid2(content string) ([]*vnfeed.AndroidPost, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	doc.Find("u").Each(func(_ int, u *goquery.Selection) {
		text := strings.TrimSpace(u.Text())
		if text == "" {
			return
		}
		for _, credit := range vnfeed.UploaderCredits {
			text = strings.ReplaceAll(text, credit, "")
		}
		b.WriteString(text)
	})

	var titles []string
	for _, m := range titleRe.FindAllString(b.String(), -1) {
		titles = append(titles, strings.TrimSpace(m))
	}

	covers := imageSources(doc.Selection)
	if len(covers) > 0 {
		covers = covers[1:]
	}
	urls := linksWithText(doc.Selection, vnfeed.MediafireLinkText)

	return zipAligned(vnfeed.AndroidTypeKirikiroid2, titles, urls, covers)
}

// ExtractEmulatorURL returns the href of the first "Apk" link.
func (e *AndroidExtractor) ExtractEmulatorURL(content string) (string, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return "", err
	}

	urls := linksWithText(doc.Selection, vnfeed.ApkLinkText)
	if len(urls) == 0 {
		return "", vnfeed.Errorf(vnfeed.ENOTFOUND, "emulator link not found")
	}
	return urls[0], nil
}

// zipAligned pairs the three lists by index. Lists of different lengths
// cannot be paired safely and fail the whole section.
func zipAligned(typ vnfeed.AndroidType, titles, urls, covers []string) ([]*vnfeed.AndroidPost, error) {
	if len(titles) != len(urls) || len(titles) != len(covers) {
		return nil, &vnfeed.AlignmentError{
			Type:   typ,
			Titles: len(titles),
			URLs:   len(urls),
			Covers: len(covers),
		}
	}

	posts := make([]*vnfeed.AndroidPost, 0, len(titles))
	for i, title := range titles {
		posts = append(posts, &vnfeed.AndroidPost{
			Title:    title,
			FullURL:  urls[i],
			CoverURL: covers[i],
			Type:     typ,
		})
	}
	return posts, nil
}
