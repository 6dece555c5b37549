package main

import (
	"fmt"

	"github.com/fwojciec/vnfeed"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	if deps.JSON {
		return printJSON(deps, vnfeed.Sections)
	}
	for _, s := range vnfeed.Sections {
		label := s.Label
		if label == "" {
			label = "-"
		}
		category := s.Category
		if category == "" {
			category = "(all posts)"
		}
		fmt.Fprintf(deps.Stdout, "%-10s %-10s %s\n", s.Key, label, category)
	}
	return nil
}

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	result, err := deps.Source.Section(deps.Ctx, vnfeed.SectionQuery{
		Key:          c.Key,
		StartIndex:   c.Start,
		MaxResults:   c.Max,
		PublishedMin: c.PublishedMin,
		PublishedMax: c.PublishedMax,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
		return err
	}
	return printResult(deps, result)
}

// Run executes the all command.
func (c *AllCmd) Run(deps *Dependencies) error {
	result, err := deps.Source.AllPosts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
		return err
	}
	return printResult(deps, result)
}
