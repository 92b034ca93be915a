package enrich

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/davewd/folio/internal/records"
)

// ThoughtID identifies the feed-sourced thought in the merged thought list.
const ThoughtID = "medium-thoughts"

// maxSections caps how many posts become sections.
const maxSections = 10

// summaryLimit is the rune budget for the plain-text section summary.
const summaryLimit = 300

const wordsPerMinute = 200

// stripPolicy removes all markup; richPolicy keeps user-generated-content
// safe markup for pre-rendered section bodies.
var (
	stripPolicy = bluemonday.StrictPolicy()
	richPolicy  = bluemonday.UGCPolicy()
)

// PostsToThought converts feed posts into a single Thought, pure and
// deterministic for a fixed input. At most ten posts are kept, in feed
// order. Descriptions are stripped to plain text and truncated; rich content
// is sanitized before being served as pre-rendered markup.
func PostsToThought(posts []Post, title string) records.Thought {
	if title == "" {
		title = "Latest Medium Posts"
	}
	if len(posts) > maxSections {
		posts = posts[:maxSections]
	}

	sections := make([]records.Section, 0, len(posts))
	for i, post := range posts {
		id := post.GUID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		sections = append(sections, records.Section{
			ID:             "medium-section-" + id,
			Title:          post.Title,
			Content:        summarize(post.Description),
			ContentEncoded: richPolicy.Sanitize(post.ContentEncoded),
			MediumURL:      post.Link,
			PublishedDate:  isoDate(post.PubDate),
			ReadTime:       readTime(post.ContentEncoded, post.Description),
		})
	}

	return records.Thought{ID: ThoughtID, Title: title, Sections: sections}
}

// summarize strips markup and truncates to the summary budget.
func summarize(description string) string {
	text := strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(description)))
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return string(runes[:summaryLimit]) + "..."
}

// isoDate renders an RSS pubDate as YYYY-MM-DD, passing unparseable values
// through unchanged rather than dropping them.
func isoDate(pubDate string) string {
	if pubDate == "" {
		return ""
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, pubDate); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return pubDate
}

// readTime estimates reading time at 200 words per minute, rounding up,
// preferring the rich content when present.
func readTime(contentEncoded, description string) string {
	text := contentEncoded
	if text == "" {
		text = description
	}
	words := len(strings.Fields(stripPolicy.Sanitize(text)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
