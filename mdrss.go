// Package mdrss generates an RSS 2.0 feed from a directory tree of markdown
// documents carrying delimited metadata blocks.
package mdrss

import (
	"fmt"
	"sort"

	"mdrss/internal/entry"
	"mdrss/internal/feed"
)

// Config describes one feed generation run. Delimiter is the literal marker
// that opens and closes the metadata block in each markdown file.
type Config struct {
	Title       string
	Link        string
	Description string
	Delimiter   string
}

// GenerateFeed walks markdownDir recursively, builds one feed item per
// markdown file with a valid metadata block, and writes the assembled RSS
// document to outputPath with the newest entries first. Files that cannot be
// read or parsed are left out of the feed without error; only a failure to
// write the output is reported to the caller.
func GenerateFeed(markdownDir, outputPath string, cfg Config) error {
	entries := entry.CollectDir(markdownDir, cfg.Delimiter)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Published.After(entries[j].Published)
	})

	info := feed.Info{
		Title:       cfg.Title,
		Link:        cfg.Link,
		Description: cfg.Description,
	}
	if err := feed.WriteFile(outputPath, info, entries); err != nil {
		return fmt.Errorf("failed to generate feed: %w", err)
	}
	return nil
}
