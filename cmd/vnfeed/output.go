package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/vnfeed"
)

// printJSON writes v as indented JSON.
func printJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes the parsed posts to stdout and the skipped entries to
// stderr, saving the posts first when a store is configured.
func printResult(deps *Dependencies, result *vnfeed.ParseResult) error {
	if err := savePosts(deps, result.Posts); err != nil {
		return err
	}

	posts := result.Posts
	if posts == nil {
		posts = []*vnfeed.Post{}
	}
	if deps.JSON {
		if err := printJSON(deps, posts); err != nil {
			return err
		}
	} else if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found.")
	} else {
		fmt.Fprintln(deps.Stdout, vnfeed.FormatPosts(posts))
	}

	if len(result.Failures) > 0 {
		fmt.Fprint(deps.Stderr, vnfeed.FormatFailures(result.Failures))
	}
	return nil
}

func savePosts(deps *Dependencies, posts []*vnfeed.Post) error {
	if deps.Posts == nil {
		return nil
	}

	var written int
	for _, p := range posts {
		ok, err := deps.Posts.SavePost(deps.Ctx, p)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
			return fmt.Errorf("save post %s: %w", p.ID, err)
		}
		if ok {
			written++
		}
	}
	fmt.Fprintf(deps.Stderr, "saved %d of %d posts\n", written, len(posts))
	return nil
}

// printAndroidPosts writes Android records to stdout, replacing the stored
// records of the type first when a store is configured.
func printAndroidPosts(deps *Dependencies, typ vnfeed.AndroidType, posts []*vnfeed.AndroidPost) error {
	if deps.AndroidPosts != nil {
		if err := deps.AndroidPosts.ReplaceAndroidPosts(deps.Ctx, typ, posts); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vnfeed.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "saved %d %s posts\n", len(posts), typ)
	}

	if posts == nil {
		posts = []*vnfeed.AndroidPost{}
	}
	if deps.JSON {
		return printJSON(deps, posts)
	}
	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, vnfeed.FormatAndroidPosts(posts))
	return nil
}
