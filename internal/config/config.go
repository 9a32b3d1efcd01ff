package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDelimiter is used when the config file does not set feed.delimiter.
const DefaultDelimiter = "---"

// Feed contains the channel-level fields and the metadata block delimiter.
type Feed struct {
	Title       string `toml:"title"`
	Link        string `toml:"link"`
	Description string `toml:"description"`
	Delimiter   string `toml:"delimiter"`
}

// Paths contains the source directory and the output file location.
type Paths struct {
	MarkdownDir string `toml:"markdown_dir"`
	OutputPath  string `toml:"output_path"`
}

type Config struct {
	Feed  Feed  `toml:"feed"`
	Paths Paths `toml:"paths"`
}

// Load reads a TOML configuration file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Feed.Delimiter == "" {
		cfg.Feed.Delimiter = DefaultDelimiter
	}
	return &cfg, nil
}

// Validate checks that every field a generation run needs is present. The
// paths may be filled in from command line flags before validation.
func (c *Config) Validate() error {
	if c.Feed.Title == "" {
		return fmt.Errorf("feed.title is required")
	}
	if c.Feed.Link == "" {
		return fmt.Errorf("feed.link is required")
	}
	if c.Feed.Description == "" {
		return fmt.Errorf("feed.description is required")
	}
	if c.Paths.MarkdownDir == "" {
		return fmt.Errorf("paths.markdown_dir is required (or pass --dir)")
	}
	if c.Paths.OutputPath == "" {
		return fmt.Errorf("paths.output_path is required (or pass --out)")
	}
	return nil
}
