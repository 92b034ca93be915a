// Package portfolio assembles view models from the record snapshot, the
// filter/sort engine, the section navigator, and the enrichment cache.
// Every method is total: before the first load it returns empty view models
// with Loaded false rather than failing.
package portfolio

import (
	"net/url"

	"github.com/davewd/folio/internal/engine"
	"github.com/davewd/folio/internal/enrich"
	"github.com/davewd/folio/internal/navigator"
	"github.com/davewd/folio/internal/querystate"
	"github.com/davewd/folio/internal/records"
)

// Service joins the record store with the pure core packages.
type Service struct {
	store    *records.Store
	enriched *enrich.Cache
}

// NewService creates a Service. enriched may be nil when enrichment is
// disabled.
func NewService(store *records.Store, enriched *enrich.Cache) *Service {
	return &Service{store: store, enriched: enriched}
}

// StyledLabel is a tag or status value with its render style.
type StyledLabel struct {
	Value string           `json:"value"`
	Style records.TagStyle `json:"style"`
}

// ProjectsView is the response model for the project list.
type ProjectsView struct {
	Loaded   bool              `json:"loaded"`
	Projects []records.Project `json:"projects"`
	Total    int               `json:"total"`
	Search   string            `json:"search"`
	Tags     []string          `json:"tags"`
	Statuses []string          `json:"statuses"`
	SortKey  string            `json:"sort_key"`
	SortDir  string            `json:"sort_direction"`
	Facets   ProjectFacets     `json:"facets"`
}

// ProjectFacets lists the selectable filter values with styles.
type ProjectFacets struct {
	Tags     []StyledLabel `json:"tags"`
	Statuses []StyledLabel `json:"statuses"`
}

// Projects decodes the selection state from query parameters and returns the
// filtered, ordered project list plus the facets needed to render filters.
// The effective (decoded) state is echoed back so clients reflect canonical
// values rather than re-parsing the URL themselves.
func (s *Service) Projects(values url.Values) ProjectsView {
	snap := s.store.Snapshot()
	st := querystate.Decode(values)

	return ProjectsView{
		Loaded:   snap.Loaded(),
		Projects: engine.FilterSort(snap.Projects, st.Filter, st.Sort),
		Total:    len(snap.Projects),
		Search:   st.Filter.Search,
		Tags:     st.Filter.Tags,
		Statuses: st.Filter.Status,
		SortKey:  st.Sort.Key,
		SortDir:  st.Sort.Direction,
		Facets:   s.facets(snap),
	}
}

func (s *Service) facets(snap *records.Snapshot) ProjectFacets {
	tags := engine.DistinctTags(snap.Projects)
	statuses := engine.DistinctStatuses(snap.Projects)

	f := ProjectFacets{
		Tags:     make([]StyledLabel, 0, len(tags)),
		Statuses: make([]StyledLabel, 0, len(statuses)),
	}
	for _, t := range tags {
		f.Tags = append(f.Tags, StyledLabel{Value: t, Style: snap.TagStyle(t)})
	}
	for _, st := range statuses {
		f.Statuses = append(f.Statuses, StyledLabel{Value: st, Style: snap.StatusStyle(st)})
	}
	return f
}

// ThoughtSummary is a thought without its section bodies, for list rendering.
type ThoughtSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	FirstSectionID string `json:"first_section_id,omitempty"`
	SectionCount   int    `json:"section_count"`
}

// ThoughtsView is the response model for the thoughts tab.
type ThoughtsView struct {
	Loaded        bool             `json:"loaded"`
	Thoughts      []ThoughtSummary `json:"thoughts"`
	Active        *records.Thought `json:"active,omitempty"`
	ActiveSection *records.Section `json:"active_section,omitempty"`
	Prev          *ThoughtSummary  `json:"prev,omitempty"`
	Next          *ThoughtSummary  `json:"next,omitempty"`
}

// Thoughts resolves the active thought/section for sectionID over the merged
// thought list (feed-sourced thought first, when present) and returns the
// circular prev/next neighbors. Callers mirror the active section id into
// the "section" query parameter to keep URLs shareable.
func (s *Service) Thoughts(sectionID string) ThoughtsView {
	snap := s.store.Snapshot()
	thoughts := s.mergedThoughts(snap)

	view := ThoughtsView{
		Loaded:   snap.Loaded(),
		Thoughts: summarize(thoughts),
	}

	active, ok := navigator.ResolveActive(thoughts, sectionID)
	if !ok {
		return view
	}

	t := active.Thought
	sec := active.Section
	view.Active = &t
	if sec.ID != "" {
		view.ActiveSection = &sec
	}

	prevID, nextID := navigator.Neighbors(thoughts, t.ID)
	view.Prev = summaryByID(view.Thoughts, prevID)
	view.Next = summaryByID(view.Thoughts, nextID)
	return view
}

// Navigate moves to the adjacent thought and returns the view anchored at
// its first section.
func (s *Service) Navigate(currentThoughtID, direction string) ThoughtsView {
	snap := s.store.Snapshot()
	thoughts := s.mergedThoughts(snap)

	active, ok := navigator.Navigate(thoughts, currentThoughtID, direction)
	if !ok {
		return ThoughtsView{Loaded: snap.Loaded(), Thoughts: []ThoughtSummary{}}
	}
	return s.Thoughts(active.Section.ID)
}

// mergedThoughts prepends the enriched thought, if one has arrived, to the
// static thoughts. The static slice is never modified.
func (s *Service) mergedThoughts(snap *records.Snapshot) []records.Thought {
	static := snap.Thoughts
	if s.enriched == nil {
		return static
	}
	extra, ok := s.enriched.Get()
	if !ok {
		return static
	}
	merged := make([]records.Thought, 0, len(static)+1)
	merged = append(merged, extra)
	merged = append(merged, static...)
	return merged
}

func summarize(thoughts []records.Thought) []ThoughtSummary {
	out := make([]ThoughtSummary, 0, len(thoughts))
	for _, t := range thoughts {
		s := ThoughtSummary{ID: t.ID, Title: t.Title, SectionCount: len(t.Sections)}
		if len(t.Sections) > 0 {
			s.FirstSectionID = t.Sections[0].ID
		}
		out = append(out, s)
	}
	return out
}

func summaryByID(summaries []ThoughtSummary, id string) *ThoughtSummary {
	for i := range summaries {
		if summaries[i].ID == id {
			return &summaries[i]
		}
	}
	return nil
}

// TimelineView is the response model for the career timeline.
type TimelineView struct {
	Loaded bool                    `json:"loaded"`
	Events []records.TimelineEvent `json:"events"`
}

// Timeline returns the career timeline in fixture order.
func (s *Service) Timeline() TimelineView {
	snap := s.store.Snapshot()
	return TimelineView{Loaded: snap.Loaded(), Events: snap.Timeline}
}

// ReadingView groups the reading-list collections.
type ReadingView struct {
	Loaded   bool                  `json:"loaded"`
	Books    []records.Book        `json:"books"`
	Links    []records.ReadingLink `json:"links"`
	Media    []records.Media       `json:"media"`
	Podcasts []records.Podcast     `json:"podcasts"`
}

// Reading returns the books/links/media/podcasts collections.
func (s *Service) Reading() ReadingView {
	snap := s.store.Snapshot()
	return ReadingView{
		Loaded:   snap.Loaded(),
		Books:    snap.Books,
		Links:    snap.Links,
		Media:    snap.Media,
		Podcasts: snap.Podcasts,
	}
}

// StylesView exposes the configured style maps plus the default pair applied
// to anything unconfigured.
type StylesView struct {
	Tags     map[string]records.TagStyle `json:"tags"`
	Statuses map[string]records.TagStyle `json:"statuses"`
	Default  records.TagStyle            `json:"default"`
}

// Styles returns the tag and status style maps.
func (s *Service) Styles() StylesView {
	snap := s.store.Snapshot()
	return StylesView{
		Tags:     snap.TagStyles,
		Statuses: snap.StatusStyles,
		Default:  records.DefaultStyle,
	}
}

// Loaded reports whether the record store has completed its first load.
func (s *Service) Loaded() bool {
	return s.store.Snapshot().Loaded()
}
