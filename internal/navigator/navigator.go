// Package navigator resolves the active thought/section pair from a section
// id and supports circular prev/next traversal across thoughts.
//
// All functions are pure and total: empty ids, unknown ids, empty or
// singleton thought lists all return a usable result. Mirroring the outcome
// into the "section" query parameter is the caller's job; the navigator never
// touches query state.
package navigator

import "github.com/davewd/folio/internal/records"

// Traversal directions.
const (
	Next = "next"
	Prev = "prev"
)

// Active is a resolved thought/section pair.
type Active struct {
	Thought records.Thought
	Section records.Section
	// Found is false when sectionID was empty or matched nothing and the
	// first thought/section fallback was used instead.
	Found bool
}

// ResolveActive returns the first thought (in list order) containing a
// section with the given id, together with that section. Section ids are
// only unique within a thought, so first match wins globally. An empty or
// unmatched id falls back to the first thought and its first section.
// The second return value is false only when thoughts is empty.
func ResolveActive(thoughts []records.Thought, sectionID string) (Active, bool) {
	if len(thoughts) == 0 {
		return Active{}, false
	}

	if sectionID != "" {
		for _, t := range thoughts {
			for _, s := range t.Sections {
				if s.ID == sectionID {
					return Active{Thought: t, Section: s, Found: true}, true
				}
			}
		}
	}

	first := thoughts[0]
	a := Active{Thought: first}
	if len(first.Sections) > 0 {
		a.Section = first.Sections[0]
	}
	return a, true
}

// Navigate returns the thought adjacent to currentThoughtID in the given
// direction, treating the list as circular in both directions. An unknown or
// empty current id is treated as the first thought. The returned active
// section is the target thought's first section (navigation always resets
// section selection). Returns false only when thoughts is empty.
func Navigate(thoughts []records.Thought, currentThoughtID, direction string) (Active, bool) {
	if len(thoughts) == 0 {
		return Active{}, false
	}

	cur := 0
	for i, t := range thoughts {
		if t.ID == currentThoughtID {
			cur = i
			break
		}
	}

	n := len(thoughts)
	target := cur
	switch direction {
	case Prev:
		target = (cur - 1 + n) % n
	case Next:
		target = (cur + 1) % n
	}

	t := thoughts[target]
	a := Active{Thought: t, Found: true}
	if len(t.Sections) > 0 {
		a.Section = t.Sections[0]
	}
	return a, true
}

// Neighbors returns the ids of the previous and next thoughts relative to
// currentThoughtID, with circular wrap. For a singleton list both neighbors
// are the thought itself.
func Neighbors(thoughts []records.Thought, currentThoughtID string) (prev, next string) {
	if len(thoughts) == 0 {
		return "", ""
	}
	cur := 0
	for i, t := range thoughts {
		if t.ID == currentThoughtID {
			cur = i
			break
		}
	}
	n := len(thoughts)
	return thoughts[(cur-1+n)%n].ID, thoughts[(cur+1)%n].ID
}
