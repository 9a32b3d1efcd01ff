// Package feed assembles and serializes RSS 2.0 documents.
package feed

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/google/uuid"

	"mdrss/internal/entry"
)

// Info holds the channel-level fields of a feed.
type Info struct {
	Title       string
	Link        string
	Description string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description cdata  `xml:"description"`
	Author      string `xml:"author"`
	GUID        guid   `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// itemGUID derives a stable identifier from the item link, so regenerating
// the feed never changes the guid of an unchanged entry.
func itemGUID(link string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
}

// Render serializes info and entries into a pretty-printed RSS 2.0 document.
// Entries appear in the order given.
func Render(info Info, entries []*entry.Entry) ([]byte, error) {
	doc := rssDoc{
		Version: "2.0",
		Channel: channel{
			Title:       info.Title,
			Link:        info.Link,
			Description: info.Description,
		},
	}

	for _, e := range entries {
		doc.Channel.Items = append(doc.Channel.Items, item{
			Title:       e.Title,
			Link:        e.Link,
			Description: cdata{Text: e.Description},
			Author:      e.Author,
			GUID:        guid{IsPermaLink: "false", Value: itemGUID(e.Link)},
			PubDate:     e.PubDate,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// WriteFile renders the feed and writes it to path in one pass, creating or
// truncating the destination. A failed write may leave a partial file behind.
func WriteFile(path string, info Info, entries []*entry.Entry) error {
	out, err := Render(info, entries)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write feed to %s: %w", path, err)
	}
	return nil
}
