package main

import (
	"fmt"

	"github.com/fwojciec/vnfeed"
)

// Run executes the apk command.
func (c *ApkCmd) Run(deps *Dependencies) error {
	posts, err := deps.Source.ApkSection(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
		return err
	}
	return printAndroidPosts(deps, vnfeed.AndroidTypeApk, posts)
}

// Run executes the kirikiroid2 command.
func (c *Kirikiroid2Cmd) Run(deps *Dependencies) error {
	posts, err := deps.Source.Kirikiroid2Section(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
		return err
	}
	return printAndroidPosts(deps, vnfeed.AndroidTypeKirikiroid2, posts)
}

// Run executes the emulator command.
func (c *EmulatorCmd) Run(deps *Dependencies) error {
	u, err := deps.Source.Kirikiroid2Emulator(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
		return err
	}
	if deps.JSON {
		return printJSON(deps, map[string]string{"url": u})
	}
	fmt.Fprintln(deps.Stdout, u)
	return nil
}
