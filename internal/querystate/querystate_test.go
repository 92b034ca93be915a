package querystate

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/davewd/folio/internal/engine"
)

func TestDecodeDefaults(t *testing.T) {
	st := Decode(url.Values{})
	if st.Filter.Search != "" || len(st.Filter.Tags) != 0 || len(st.Filter.Status) != 0 {
		t.Errorf("filter not empty: %+v", st.Filter)
	}
	if st.Sort != engine.DefaultSort {
		t.Errorf("sort = %+v, want default %+v", st.Sort, engine.DefaultSort)
	}
	if st.Tab != "" || st.Section != "" {
		t.Errorf("tab/section not empty: %q %q", st.Tab, st.Section)
	}
}

func TestDecodeRepeatedValues(t *testing.T) {
	values, _ := url.ParseQuery("tags=ml&tags=infra&search=")
	st := Decode(values)
	if st.Filter.Search != "" {
		t.Errorf("search = %q", st.Filter.Search)
	}
	if !reflect.DeepEqual(st.Filter.Tags, []string{"ml", "infra"}) {
		t.Errorf("tags = %v", st.Filter.Tags)
	}
	if len(st.Filter.Status) != 0 {
		t.Errorf("status = %v", st.Filter.Status)
	}
}

func TestDecodeSortKeyWithoutDirection(t *testing.T) {
	values, _ := url.ParseQuery("sortKey=name")
	st := Decode(values)
	if st.Sort.Key != "name" || st.Sort.Direction != engine.Asc {
		t.Errorf("sort = %+v, want name asc", st.Sort)
	}
}

func TestDecodeInvalidDirection(t *testing.T) {
	values, _ := url.ParseQuery("sortKey=name&sortDirection=sideways")
	st := Decode(values)
	if st.Sort.Direction != engine.Asc {
		t.Errorf("direction = %q, want asc", st.Sort.Direction)
	}
}

func TestEncodeAppendsSearchKeepsTags(t *testing.T) {
	values, _ := url.ParseQuery("tags=ml&tags=infra")
	st := Decode(values)
	st.Filter.Search = "x"

	out := Encode(values, st)

	if !reflect.DeepEqual(out["tags"], []string{"ml", "infra"}) {
		t.Errorf("tags = %v", out["tags"])
	}
	if got := out.Get("search"); got != "x" {
		t.Errorf("search = %q, want x", got)
	}
}

func TestEncodeDeletesEmptySearch(t *testing.T) {
	values, _ := url.ParseQuery("search=old&tags=ml")
	st := Decode(values)
	st.Filter.Search = ""

	out := Encode(values, st)
	if _, present := out["search"]; present {
		t.Error("empty search must delete the key, not set it")
	}
}

func TestEncodePreservesUnrecognizedKeys(t *testing.T) {
	values, _ := url.ParseQuery("tab=effort&utm_source=share&tags=ml")
	st := Decode(values)
	st.Filter.Tags = []string{"go"}

	out := Encode(values, st)
	if got := out.Get("utm_source"); got != "share" {
		t.Errorf("utm_source = %q, want share", got)
	}
	if got := out.Get("tab"); got != "effort" {
		t.Errorf("tab = %q, want effort", got)
	}
	if !reflect.DeepEqual(out["tags"], []string{"go"}) {
		t.Errorf("tags = %v, want full replacement", out["tags"])
	}
}

func TestEncodeClearThenReappend(t *testing.T) {
	values, _ := url.ParseQuery("status=Active&status=Complete")
	st := Decode(values)
	st.Filter.Status = []string{"Future"}

	out := Encode(values, st)
	if !reflect.DeepEqual(out["status"], []string{"Future"}) {
		t.Errorf("status = %v, want [Future]", out["status"])
	}
}

func TestEncodeOmitsDefaultSort(t *testing.T) {
	st := State{Sort: engine.DefaultSort}
	out := Encode(url.Values{}, st)
	if _, ok := out["sortKey"]; ok {
		t.Error("default sort should not be encoded")
	}
	if _, ok := out["sortDirection"]; ok {
		t.Error("default sort direction should not be encoded")
	}
}

func TestEncodeNonDefaultSort(t *testing.T) {
	st := State{Sort: engine.SortConfig{Key: "name", Direction: engine.Desc}}
	out := Encode(url.Values{}, st)
	if out.Get("sortKey") != "name" || out.Get("sortDirection") != "desc" {
		t.Errorf("encoded sort = %q/%q", out.Get("sortKey"), out.Get("sortDirection"))
	}
}

func TestEncodeDoesNotMutateInput(t *testing.T) {
	values, _ := url.ParseQuery("tags=ml&search=a")
	st := Decode(values)
	st.Filter.Tags = []string{"infra"}
	st.Filter.Search = ""

	_ = Encode(values, st)

	if !reflect.DeepEqual(values["tags"], []string{"ml"}) || values.Get("search") != "a" {
		t.Errorf("input mutated: %v", values)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"tags=ml&tags=infra&search=x",
		"tab=effort&section=s1",
		"status=Active&sortKey=name&sortDirection=desc",
		"search=hello%20world",
	}
	for _, raw := range cases {
		values, err := url.ParseQuery(raw)
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		out := Encode(values, Decode(values))
		if !reflect.DeepEqual(out, values) {
			t.Errorf("%s: round trip = %v, want %v", raw, out, values)
		}
	}
}

func TestRoundTripEffectiveConfig(t *testing.T) {
	// decode(encode(update(decode(state), change))) equals applying the
	// change directly: no information is lost across the URL boundary.
	values, _ := url.ParseQuery("tags=ml&tags=infra&tab=effort")
	st := Decode(values)
	st.Filter.Search = "x"
	st.Filter.Status = []string{"Active"}

	again := Decode(Encode(values, st))
	if !reflect.DeepEqual(again.Filter, st.Filter) {
		t.Errorf("filter = %+v, want %+v", again.Filter, st.Filter)
	}
	if again.Tab != "effort" {
		t.Errorf("tab = %q", again.Tab)
	}
	if again.Sort != st.Sort {
		t.Errorf("sort = %+v, want %+v", again.Sort, st.Sort)
	}
}
