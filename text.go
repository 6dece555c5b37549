package vnfeed

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// NormalizeText returns entry text as UTF-8 whether the transport handed it
// over as bytes or as a string. A leading byte order mark is dropped and
// invalid sequences become U+FFFD.
func NormalizeText[T ~string | ~[]byte](v T) string {
	s, err := unicode.UTF8BOM.NewDecoder().String(string(v))
	if err != nil {
		return strings.ToValidUTF8(string(v), "\uFFFD")
	}
	return s
}
