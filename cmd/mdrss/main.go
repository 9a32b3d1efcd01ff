package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mdrss"
	"mdrss/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		dir        string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "mdrss",
		Short: "Generate an RSS feed from a directory of markdown files",
		Long: `mdrss walks a directory tree of markdown documents, reads the metadata
block at the top of each file, and writes a single RSS 2.0 feed with the
newest posts first. Files without a valid metadata block are left out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Paths.MarkdownDir = dir
			}
			if out != "" {
				cfg.Paths.OutputPath = out
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			feedCfg := mdrss.Config{
				Title:       cfg.Feed.Title,
				Link:        cfg.Feed.Link,
				Description: cfg.Feed.Description,
				Delimiter:   cfg.Feed.Delimiter,
			}
			if err := mdrss.GenerateFeed(cfg.Paths.MarkdownDir, cfg.Paths.OutputPath, feedCfg); err != nil {
				return err
			}

			slog.Info("feed generated",
				"dir", cfg.Paths.MarkdownDir,
				"output", cfg.Paths.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "mdrss.toml", "Path to the TOML configuration file")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory containing markdown files (overrides paths.markdown_dir)")
	cmd.Flags().StringVar(&out, "out", "", "Destination path for the feed (overrides paths.output_path)")

	return cmd
}
