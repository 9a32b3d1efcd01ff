package entry

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FrontMatter is the delimited metadata block at the top of a markdown file.
// All five fields are required; a block missing any of them produces no entry.
type FrontMatter struct {
	Title       string `yaml:"title"`
	PubDate     string `yaml:"pub_date"`
	Author      string `yaml:"author"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

func (fm FrontMatter) validate() error {
	return validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required),
		validation.Field(&fm.PubDate, validation.Required),
		validation.Field(&fm.Author, validation.Required),
		validation.Field(&fm.URL, validation.Required),
		validation.Field(&fm.Description, validation.Required),
	)
}

// Entry is one feed item derived from a markdown file.
type Entry struct {
	Title       string
	Author      string
	Link        string
	Description string
	// PubDate is the original front-matter string and is emitted verbatim.
	PubDate string
	// Published is the parsed form of PubDate, used only for ordering.
	Published time.Time
}
