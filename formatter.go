package vnfeed

import "strings"

// FormatPosts formats posts for terminal inspection.
// Posts are separated by blank lines.
func FormatPosts(posts []*Post) string {
	if len(posts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(posts))
	for _, p := range posts {
		parts = append(parts, p.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatAndroidPosts formats Android records for terminal inspection.
func FormatAndroidPosts(posts []*AndroidPost) string {
	if len(posts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(posts))
	for _, p := range posts {
		parts = append(parts, p.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatFailures formats parse failures one per line.
func FormatFailures(failures []ParseFailure) string {
	var b strings.Builder
	for _, f := range failures {
		id := f.PostID
		if id == "" {
			id = f.EntryID
		}
		b.WriteString("skipped ")
		b.WriteString(id)
		b.WriteString(": ")
		b.WriteString(ErrorMessage(f.Err))
		b.WriteString("\n")
	}
	return b.String()
}
