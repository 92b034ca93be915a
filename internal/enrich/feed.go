// Package enrich turns an external syndication feed into one additional
// Thought. Everything here is best-effort: any failure degrades to "no
// enrichment", logged but never surfaced as a user-visible error.
package enrich

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Post is one feed item in the shape the converter consumes.
type Post struct {
	Title          string
	Link           string
	GUID           string
	PubDate        string
	Description    string
	ContentEncoded string
}

type rssRoot struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	GUID        string `xml:"guid"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Content     string `xml:"encoded"` // content:encoded
	PubDate     string `xml:"pubDate"`
}

// ParseFeed parses an RSS 2.0 document (the format Medium serves) into
// posts. Items without both a title and a link are dropped. An item without
// a guid falls back to its link.
func ParseFeed(data []byte) ([]Post, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("enrich: empty feed")
	}

	var root rssRoot
	if err := xml.Unmarshal(trimmed, &root); err != nil {
		return nil, fmt.Errorf("enrich: parse feed: %w", err)
	}

	posts := make([]Post, 0, len(root.Channel.Items))
	for _, item := range root.Channel.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		guid := strings.TrimSpace(item.GUID)
		if guid == "" {
			guid = link
		}
		posts = append(posts, Post{
			Title:          title,
			Link:           link,
			GUID:           guid,
			PubDate:        strings.TrimSpace(item.PubDate),
			Description:    strings.TrimSpace(item.Description),
			ContentEncoded: strings.TrimSpace(item.Content),
		})
	}
	return posts, nil
}
