package records

import "sync/atomic"

// Snapshot is one immutable view of every record collection. Consumers must
// never modify a snapshot in place; derived orderings are built on copies.
type Snapshot struct {
	Projects     []Project
	Timeline     []TimelineEvent
	Thoughts     []Thought
	Books        []Book
	Links        []ReadingLink
	Media        []Media
	Podcasts     []Podcast
	TagStyles    map[string]TagStyle
	StatusStyles map[string]TagStyle

	loaded bool
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Projects:     []Project{},
		Timeline:     []TimelineEvent{},
		Thoughts:     []Thought{},
		Books:        []Book{},
		Links:        []ReadingLink{},
		Media:        []Media{},
		Podcasts:     []Podcast{},
		TagStyles:    map[string]TagStyle{},
		StatusStyles: map[string]TagStyle{},
	}
}

// Loaded reports whether this snapshot came from a successful load. The
// zero/empty snapshot served before the first load returns false, so callers
// can render a loading state without nil checks.
func (s *Snapshot) Loaded() bool { return s.loaded }

// TagStyle returns the configured style for tag, or DefaultStyle.
func (s *Snapshot) TagStyle(tag string) TagStyle {
	if st, ok := s.TagStyles[tag]; ok {
		return st
	}
	return DefaultStyle
}

// StatusStyle returns the configured style for status, or DefaultStyle.
func (s *Snapshot) StatusStyle(status string) TagStyle {
	if st, ok := s.StatusStyles[status]; ok {
		return st
	}
	return DefaultStyle
}

// Store holds the current snapshot behind an atomic pointer. Reads are
// lock-free; Swap installs a replacement wholesale. There is never partial
// mutation: the previous snapshot stays valid for readers that hold it.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store serving the explicit not-yet-loaded snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(emptySnapshot())
	return s
}

// Snapshot returns the current snapshot. Never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap installs snap as the current snapshot. Nil snapshots are ignored.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}
