// Package vnfeed extracts visual novel release posts and Android entries
// from a Blogger blog's Atom feed. It queries the feed per section, splits
// each entry's HTML fragment into synopsis, specifications, images and
// metadata, and returns typed records for a separate web front end.
//
// This package contains domain types, interfaces and static vocabulary
// tables following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, gofeed/, sqlite/).
package vnfeed
