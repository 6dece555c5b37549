package vnfeed

import "strings"

// Section maps a human-facing section key to the feed category it is
// queried by and the label attached to posts in that category.
type Section struct {
	Key      string `json:"key"`
	Category string `json:"category"` // empty means unfiltered
	Label    string `json:"label"`
}

// Sections is the ordered section table of the blog.
var Sections = []Section{
	{Key: "inicio", Category: "", Label: ""},
	{Key: "completo", Category: "Completo", Label: "Completo"},
	{Key: "allages", Category: "sin h", Label: "All Ages"},
	{Key: "yuri", Category: "yuri", Label: "Yuri"},
	{Key: "otome", Category: "otome", Label: "Otome"},
	{Key: "eroge", Category: "eroge", Label: "Eroge"},
}

// DefaultSectionKey is the unfiltered front page section.
const DefaultSectionKey = "inicio"

// LookupSection resolves a section key case-insensitively.
// Returns ENOTFOUND if no section has that key.
func LookupSection(key string) (Section, error) {
	for _, s := range Sections {
		if strings.EqualFold(s.Key, key) {
			return s, nil
		}
	}
	return Section{}, Errorf(ENOTFOUND, "section %q not found", key)
}

// LabelForCategory returns the label for a feed category term.
// Terms outside the section table report false.
func LabelForCategory(term string) (string, bool) {
	for _, s := range Sections {
		if s.Category != "" && s.Category == term {
			return s.Label, true
		}
	}
	return "", false
}

// LabelsForCategories maps category terms to labels, dropping unknown
// terms and duplicates while keeping first-seen order.
func LabelsForCategories(terms []string) []string {
	labels := []string{}
	seen := make(map[string]bool)
	for _, term := range terms {
		label, ok := LabelForCategory(term)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}
