// Package engine implements the pure filter/sort pipeline over project
// records. All functions are deterministic, total, and never mutate their
// input; repeated application of the same config to its own output is a
// fixed point.
package engine

import (
	"sort"
	"strings"

	"github.com/davewd/folio/internal/records"
)

// Sort directions.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Sortable project fields.
const (
	KeyName      = "name"
	KeyStatus    = "status"
	KeyYearStart = "year_start"
	KeyYearEnd   = "year_end"
)

// FilterConfig selects which projects survive filtering. Empty fields impose
// no constraint. Status and Tags use OR semantics within the set.
type FilterConfig struct {
	Search string
	Status []string
	Tags   []string
}

// IsZero reports whether the config imposes no constraint at all.
func (f FilterConfig) IsZero() bool {
	return f.Search == "" && len(f.Status) == 0 && len(f.Tags) == 0
}

// SortConfig orders the filtered result. Ties on Key are broken by name
// ascending regardless of Direction, so output order is reproducible.
type SortConfig struct {
	Key       string
	Direction string
}

// DefaultSort is applied when no sort is requested: most recent work first.
var DefaultSort = SortConfig{Key: KeyYearStart, Direction: Desc}

// FilterSort returns the projects matching filter, ordered per sortCfg.
// Search matches case-insensitively against name or description (not tags).
// Filters apply in order search, status, tags; a record failing any predicate
// is excluded. The input slice is never modified.
func FilterSort(projects []records.Project, filter FilterConfig, sortCfg SortConfig) []records.Project {
	out := make([]records.Project, 0, len(projects))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, p := range projects {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(filter.Status) > 0 && !contains(filter.Status, p.Status) {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(p.Tags, filter.Tags) {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, sortCfg)
	return out
}

// DistinctTags returns every tag across records, deduplicated and sorted.
func DistinctTags(projects []records.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// DistinctStatuses returns every status across records, deduplicated and sorted.
func DistinctStatuses(projects []records.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		if p.Status != "" {
			seen[p.Status] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func matchesSearch(p records.Project, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyTag(tags, selected []string) bool {
	for _, t := range tags {
		if contains(selected, t) {
			return true
		}
	}
	return false
}

func sortProjects(projects []records.Project, cfg SortConfig) {
	if cfg.Key == "" {
		cfg = DefaultSort
	}
	desc := cfg.Direction == Desc

	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]

		// Records missing the sort key's value go last in both directions,
		// decided before the direction flip.
		am, bm := missingKey(a, cfg.Key), missingKey(b, cfg.Key)
		if am != bm {
			return bm
		}

		c := compareByKey(a, b, cfg.Key)
		if c == 0 {
			// Name ascending tie-break, independent of direction.
			return compareFold(a.Name, b.Name) < 0
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func missingKey(p records.Project, key string) bool {
	switch key {
	case KeyYearStart:
		return p.YearStart == nil
	case KeyYearEnd:
		return p.YearEnd == nil
	default:
		return false
	}
}

func compareByKey(a, b records.Project, key string) int {
	switch key {
	case KeyStatus:
		return compareFold(a.Status, b.Status)
	case KeyYearStart:
		return compareYear(a.YearStart, b.YearStart)
	case KeyYearEnd:
		return compareYear(a.YearEnd, b.YearEnd)
	default:
		return compareFold(a.Name, b.Name)
	}
}

// compareYear is only reached with both values present or both missing;
// missingKey has already ordered the mixed case.
func compareYear(a, b *int) int {
	switch {
	case a == nil || b == nil:
		return 0
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
