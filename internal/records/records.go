// Package records defines the portfolio record types and the immutable
// snapshot store they are served from.
package records

// Link is a labelled hyperlink attached to a record.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// Project is a single portfolio project.
//
// Status is an open string enumeration; values not present in the status
// style config still render with the default style. YearEnd absent or equal
// to YearStart means an ongoing or single-year project.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Links       []Link   `json:"links"`
	YearStart   *int     `json:"year_start,omitempty"`
	YearEnd     *int     `json:"year_end,omitempty"`
}

// TimelineEvent is one entry on the career timeline.
type TimelineEvent struct {
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Section is one readable unit inside a Thought. ContentEncoded, when
// present, carries pre-rendered (sanitized) markup from an external feed.
type Section struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	ContentEncoded string `json:"contentEncoded,omitempty"`
	MediumURL      string `json:"mediumUrl,omitempty"`
	PublishedDate  string `json:"publishedDate,omitempty"`
	ReadTime       string `json:"readTime,omitempty"`
}

// Thought is an ordered collection of sections under one title.
// Section ids are unique within a Thought but not globally.
type Thought struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Book is an entry in the books reading list.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ReadingLink is an entry in the links reading list.
type ReadingLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Media is an entry in the media reading list.
type Media struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// Podcast is an entry in the podcasts reading list.
type Podcast struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Host  string `json:"host,omitempty"`
}

// TagStyle is a background/text color pair for rendering a tag or status.
type TagStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// DefaultStyle is applied to any tag or status without a configured style.
var DefaultStyle = TagStyle{Background: "#E5E7EB", Text: "#374151"}
