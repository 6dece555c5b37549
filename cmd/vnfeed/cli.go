package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/vnfeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Source       vnfeed.PostSource
	Posts        vnfeed.PostService        // nil unless --db is set
	AndroidPosts vnfeed.AndroidPostService // nil unless --db is set
	JSON         bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BlogID  string        `name:"blog-id" env:"VNFEED_BLOG_ID" default:"${blog_id}" help:"Blogger blog ID"`
	DB      string        `name:"db" env:"VNFEED_DB" help:"Save records to this SQLite database"`
	JSON    bool          `name:"json" help:"Print records as JSON"`
	Verbose bool          `short:"v" help:"Log every feed request"`
	Timeout time.Duration `default:"${timeout}" help:"Per-request timeout"`
	Rate    float64       `default:"0" help:"Maximum feed requests per second (0 for no limit)"`

	Sections    SectionsCmd    `cmd:"" help:"List the blog sections"`
	Section     SectionCmd     `cmd:"" help:"Show one page of a section"`
	All         AllCmd         `cmd:"" help:"Show every post in the feed"`
	Apk         ApkCmd         `cmd:"" help:"Show the Android apk section"`
	Kirikiroid2 Kirikiroid2Cmd `cmd:"" name:"kirikiroid2" help:"Show the Kirikiroid2 section"`
	Emulator    EmulatorCmd    `cmd:"" help:"Show the Kirikiroid2 emulator download link"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	Key          string `arg:"" optional:"" default:"inicio" help:"Section key (inicio, completo, allages, yuri, otome, eroge)"`
	Start        int    `default:"1" help:"First feed position (1-based)"`
	Max          int    `default:"25" help:"Page size"`
	PublishedMin string `name:"published-min" help:"Earliest publication date (YYYY-MM-DD)"`
	PublishedMax string `name:"published-max" help:"Latest publication date (YYYY-MM-DD)"`
}

// AllCmd is the "all" subcommand.
type AllCmd struct{}

// ApkCmd is the "apk" subcommand.
type ApkCmd struct{}

// Kirikiroid2Cmd is the "kirikiroid2" subcommand.
type Kirikiroid2Cmd struct{}

// EmulatorCmd is the "emulator" subcommand.
type EmulatorCmd struct{}
