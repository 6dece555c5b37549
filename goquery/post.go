package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vnfeed"
)

// tagRun matches free text followed by one or more bracketed tag groups,
// e.g. "Sakura Maid [Completo][Eroge]".
const tagRun = `[\p{L}\p{N}_]+[,!?'/\-\s\p{L}\p{N}_]*(?:\[[^\]]*\])+`

// leadingTagsRe strips everything up to the last tag run the author placed
// before the synopsis.
var leadingTagsRe = regexp.MustCompile(`.*` + tagRun)

// Ensure PostParser implements vnfeed.PostParser at compile time.
var _ vnfeed.PostParser = (*PostParser)(nil)

// PostParser builds posts from feed entries.
type PostParser struct{}

// NewPostParser creates a new PostParser.
func NewPostParser() *PostParser {
	return &PostParser{}
}

// ParsePost parses a single entry. Entries whose title contains a
// blacklisted substring are not releases and yield nil, nil.
func (p *PostParser) ParsePost(entry *vnfeed.Entry) (*vnfeed.Post, error) {
	if entry == nil {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "nil entry")
	}
	if isExcluded(entry.Title) {
		return nil, nil
	}

	if len(entry.Links) <= vnfeed.AlternateLinkIndex {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "entry has %d links, want at least %d",
			len(entry.Links), vnfeed.AlternateLinkIndex+1)
	}
	fullURL := entry.Links[vnfeed.AlternateLinkIndex].Href

	id, ok := vnfeed.PostIDFromEntryID(entry.ID)
	if !ok {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "no post id in entry id %q", entry.ID)
	}

	seg, err := Segment(entry.Content)
	if err != nil {
		return nil, err
	}

	if len(seg.Images) == 0 {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "post %s has no images", id)
	}

	specs, err := specifications(seg.Parts)
	if err != nil {
		return nil, err
	}

	published, err := vnfeed.FormatFeedDate(entry.Published)
	if err != nil {
		return nil, err
	}
	updated, err := vnfeed.FormatFeedDate(entry.Updated)
	if err != nil {
		return nil, err
	}

	return &vnfeed.Post{
		FullURL:         fullURL,
		ID:              id,
		Title:           entry.Title,
		Synopsis:        synopsis(seg.Parts[0]),
		CoverURL:        seg.Images[0],
		ScreenshotURLs:  append([]string{}, seg.Images[1:]...),
		Specifications:  specs,
		Labels:          vnfeed.LabelsForCategories(entry.Categories),
		PublicationDate: published,
		UpdateDate:      updated,
	}, nil
}

func isExcluded(title string) bool {
	for _, s := range vnfeed.TitleBlacklist {
		if strings.Contains(title, s) {
			return true
		}
	}
	return false
}

// synopsis cleans the pre-delimiter text.
func synopsis(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	text = leadingTagsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// specifications parses the specification table. It is read from the
// segment after "Imágenes:"; when that segment names no field (images with
// no text between two delimiters) the next text segment that does is used.
func specifications(parts []string) (map[string]string, error) {
	if len(parts) <= vnfeed.SpecificationSegment {
		return nil, vnfeed.Errorf(vnfeed.EINVALID, "content has %d segments, want at least %d",
			len(parts), vnfeed.SpecificationSegment+1)
	}

	text := parts[vnfeed.SpecificationSegment]
	if !fieldRe.MatchString(text) {
		for i := vnfeed.SpecificationSegment + 2; i < len(parts); i += 2 {
			if fieldRe.MatchString(parts[i]) {
				text = parts[i]
				break
			}
		}
	}

	// Text before the first field name is discarded.
	pieces := splitKeep(fieldRe, strings.TrimSpace(text))[1:]

	specs := make(map[string]string, len(pieces)/2)
	for i := 0; i+1 < len(pieces); i += 2 {
		specs[canonicalField(pieces[i])] = fieldValue(pieces[i+1])
	}
	return specs, nil
}

// canonicalField returns the table spelling of a matched field name.
func canonicalField(name string) string {
	for _, f := range vnfeed.SpecificationFields {
		if strings.EqualFold(f, name) {
			return f
		}
	}
	return name
}

// fieldValue trims the separator and non-breaking spaces around a value.
func fieldValue(raw string) string {
	v := strings.Trim(raw, ": \u00a0")
	return strings.ReplaceAll(v, "\u00a0", "")
}
