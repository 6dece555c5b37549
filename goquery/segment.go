// Package goquery implements the entry content parsers on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vnfeed"
)

var (
	lineBreakReplacer = strings.NewReplacer("\r", "", "\n", "")

	delimiterRe = alternation(vnfeed.SegmentDelimiters)
	fieldRe     = alternation(vnfeed.SpecificationFields)
)

// Segments holds an entry's content split on the section delimiters.
type Segments struct {
	// Parts alternates text and matched delimiter, starting and ending with
	// text. Parts[0] is the text before the first delimiter.
	Parts []string

	// Images are the img sources in document order. The first one is the
	// cover.
	Images []string
}

// Segment parses an entry's HTML fragment. A short leading paragraph (or,
// lacking any paragraph, a short leading div) is treated as a decorative
// lead-in and removed. Line breaks are stripped before the text is split.
func Segment(content string) (*Segments, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return nil, err
	}

	lead := doc.Find("p").First()
	if lead.Length() == 0 {
		lead = doc.Find("div").First()
	}
	if lead.Length() > 0 && utf8.RuneCountInString(lead.Text()) < vnfeed.BoilerplateThreshold {
		lead.Remove()
	}

	text := lineBreakReplacer.Replace(doc.Text())
	return &Segments{
		Parts:  splitKeep(delimiterRe, text),
		Images: imageSources(doc.Selection),
	}, nil
}

// parseFragment wraps a content fragment as a minimal document.
func parseFragment(content string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html>" + content + "</html>"))
	if err != nil {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// imageSources returns the src of every img under sel in document order.
func imageSources(sel *goquery.Selection) []string {
	var srcs []string
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		srcs = append(srcs, img.AttrOr("src", ""))
	})
	return srcs
}

// linksWithText returns the href of every anchor whose text is exactly text.
func linksWithText(sel *goquery.Selection, text string) []string {
	var hrefs []string
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if a.Text() == text {
			hrefs = append(hrefs, a.AttrOr("href", ""))
		}
	})
	return hrefs
}

// alternation compiles a case-insensitive pattern matching any of words,
// trying them in order.
func alternation(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}

// splitKeep splits s around matches of re and keeps the matches, so the
// result alternates text and match and always has odd length.
func splitKeep(re *regexp.Regexp, s string) []string {
	var parts []string
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		parts = append(parts, s[last:loc[0]], s[loc[0]:loc[1]])
		last = loc[1]
	}
	return append(parts, s[last:])
}
