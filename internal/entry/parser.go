package entry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var requiredScalar = map[string]bool{
	"title":       true,
	"pub_date":    true,
	"author":      true,
	"url":         true,
	"description": true,
}

// decodeFrontMatter decodes the metadata block into a FrontMatter record.
// The block is inspected as a yaml.Node first because yaml.Unmarshal alone
// would coerce int and bool scalars into the string fields; a required field
// whose value is not a string is a decode failure. Plain timestamps resolve
// to the !!timestamp tag and stay accepted.
func decodeFrontMatter(block []byte) (*FrontMatter, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(block, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("metadata block is empty")
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("metadata block is not a mapping")
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if !requiredScalar[key.Value] {
			continue
		}
		if value.Kind != yaml.ScalarNode || (value.Tag != "!!str" && value.Tag != "!!timestamp") {
			return nil, fmt.Errorf("field %s is not a string", key.Value)
		}
	}

	var fm FrontMatter
	if err := doc.Decode(&fm); err != nil {
		return nil, err
	}
	return &fm, nil
}

// ParseContent extracts at most one Entry from raw file text. The metadata
// block sits between the first two occurrences of delim; everything after the
// second occurrence is the markdown body and plays no role in the feed. A nil
// result means the file contributes nothing, whatever the cause.
func ParseContent(content, delim string) *Entry {
	parts := strings.SplitN(content, delim, 3)
	if len(parts) != 3 {
		return nil
	}

	fm, err := decodeFrontMatter([]byte(parts[1]))
	if err != nil {
		return nil
	}
	if err := fm.validate(); err != nil {
		return nil
	}

	published, err := time.Parse(time.RFC3339, fm.PubDate)
	if err != nil {
		return nil
	}

	return &Entry{
		Title:       fm.Title,
		Author:      fm.Author,
		Link:        fm.URL,
		Description: fm.Description,
		PubDate:     fm.PubDate,
		Published:   published,
	}
}

// ParseFile reads one markdown file and parses its content. Read failures are
// treated the same as parse failures.
func ParseFile(path, delim string) *Entry {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return ParseContent(string(content), delim)
}

// CollectDir walks dir recursively and returns an entry for every readable
// .md file carrying a valid metadata block. Collection is best effort:
// traversal errors and invalid files are skipped silently. Order follows the
// traversal and is established later by the assembler.
func CollectDir(dir, delim string) []*Entry {
	var entries []*Entry

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".md" {
			return nil
		}
		if e := ParseFile(path, delim); e != nil {
			entries = append(entries, e)
		}
		return nil
	})

	return entries
}
