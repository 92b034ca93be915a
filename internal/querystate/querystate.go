// Package querystate maps between URL query parameters and the selection
// state they encode (active tab, active section, filter, sort).
//
// Query parameters are the single source of truth for selection: decode and
// the engine together fully determine what is rendered, which is what makes
// shared links and back/forward navigation correct. Multi-valued parameters
// use repetition (?tags=a&tags=b), never comma-joining.
package querystate

import (
	"net/url"

	"github.com/davewd/folio/internal/engine"
)

// Recognized parameter names. Everything else passes through Encode untouched.
const (
	ParamTab     = "tab"
	ParamSection = "section"
	ParamSearch  = "search"
	ParamTags    = "tags"
	ParamStatus  = "status"
	ParamSortKey = "sortKey"
	ParamSortDir = "sortDirection"
)

// State is the decoded selection state.
type State struct {
	Tab     string
	Section string
	Filter  engine.FilterConfig
	Sort    engine.SortConfig
}

// Decode reads the recognized parameters out of values. Absent parameters
// yield defaults: empty search/section/tab, empty filter sets, and the
// engine's default sort (year_start descending). A sortKey given without a
// direction sorts ascending, matching a first click on a column header.
func Decode(values url.Values) State {
	st := State{
		Tab:     values.Get(ParamTab),
		Section: values.Get(ParamSection),
		Filter: engine.FilterConfig{
			Search: values.Get(ParamSearch),
			Tags:   append([]string(nil), values[ParamTags]...),
			Status: append([]string(nil), values[ParamStatus]...),
		},
	}

	key := values.Get(ParamSortKey)
	if key == "" {
		st.Sort = engine.DefaultSort
		return st
	}
	dir := values.Get(ParamSortDir)
	if dir != engine.Asc && dir != engine.Desc {
		dir = engine.Asc
	}
	st.Sort = engine.SortConfig{Key: key, Direction: dir}
	return st
}

// Encode returns a copy of values with every recognized parameter replaced
// from st. Unrecognized parameters are preserved untouched. Multi-valued
// parameters are cleared then re-appended, and a parameter whose value is
// empty is deleted entirely so shared URLs stay minimal. A sort equal to the
// default is likewise omitted. The input values are never modified.
func Encode(values url.Values, st State) url.Values {
	out := make(url.Values, len(values))
	for k, vs := range values {
		out[k] = append([]string(nil), vs...)
	}

	setOrDelete(out, ParamTab, st.Tab)
	setOrDelete(out, ParamSection, st.Section)
	setOrDelete(out, ParamSearch, st.Filter.Search)

	out.Del(ParamTags)
	for _, t := range st.Filter.Tags {
		out.Add(ParamTags, t)
	}
	out.Del(ParamStatus)
	for _, s := range st.Filter.Status {
		out.Add(ParamStatus, s)
	}

	out.Del(ParamSortKey)
	out.Del(ParamSortDir)
	if st.Sort.Key != "" && st.Sort != engine.DefaultSort {
		out.Set(ParamSortKey, st.Sort.Key)
		dir := st.Sort.Direction
		if dir != engine.Asc && dir != engine.Desc {
			dir = engine.Asc
		}
		out.Set(ParamSortDir, dir)
	}

	return out
}

func setOrDelete(values url.Values, key, v string) {
	if v == "" {
		values.Del(key)
		return
	}
	values.Set(key, v)
}
