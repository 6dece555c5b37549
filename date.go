package vnfeed

import "time"

// DateLayout is the calendar date format of post dates.
const DateLayout = "2006-01-02"

// FormatFeedDate converts a feed timestamp such as
// "2021-05-01T10:00:00.000-05:00" to a calendar date in the timestamp's own
// offset.
func FormatFeedDate(timestamp string) (string, error) {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return "", Errorf(EINVALID, "invalid feed timestamp %q", timestamp)
	}
	return t.Format(DateLayout), nil
}
