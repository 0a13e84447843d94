package audit

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// DiffKind classifies one structural difference.
type DiffKind string

const (
	DiffAdded   DiffKind = "+"
	DiffRemoved DiffKind = "-"
	DiffChanged DiffKind = "~"
)

// Difference is one leaf-level change between two maps. Segments holds the
// key at each nesting level; Path joins them with "." for display, so a key
// that itself contains "." is only unambiguous in Segments. Old is unset for
// DiffAdded and New for DiffRemoved.
type Difference struct {
	Kind     DiffKind
	Path     string
	Segments []string
	Old      any
	New      any
}

// Diff computes the deep difference between two maps. nil maps are empty.
//
// At every level removed keys are reported first, then keys present on both
// sides, then added keys; each group in ascending key order. Nested maps
// present on both sides are descended into instead of being reported whole.
func Diff(oldMap, newMap map[string]any) []Difference {
	return diffMaps(nil, oldMap, newMap, nil)
}

func diffMaps(parent []string, oldMap, newMap map[string]any, out []Difference) []Difference {
	var removed, common, added []string
	for k := range oldMap {
		if _, ok := newMap[k]; ok {
			common = append(common, k)
		} else {
			removed = append(removed, k)
		}
	}
	for k := range newMap {
		if _, ok := oldMap[k]; !ok {
			added = append(added, k)
		}
	}
	sort.Strings(removed)
	sort.Strings(common)
	sort.Strings(added)

	for _, k := range removed {
		out = append(out, newDifference(DiffRemoved, parent, k, oldMap[k], nil))
	}
	for _, k := range common {
		o, n := oldMap[k], newMap[k]
		om, oIsMap := o.(map[string]any)
		nm, nIsMap := n.(map[string]any)
		if oIsMap && nIsMap {
			out = diffMaps(childPath(parent, k), om, nm, out)
			continue
		}
		if !reflect.DeepEqual(o, n) {
			out = append(out, newDifference(DiffChanged, parent, k, o, n))
		}
	}
	for _, k := range added {
		out = append(out, newDifference(DiffAdded, parent, k, nil, newMap[k]))
	}
	return out
}

// childPath returns parent+key without sharing parent's backing array.
func childPath(parent []string, key string) []string {
	return append(parent[:len(parent):len(parent)], key)
}

func newDifference(kind DiffKind, parent []string, key string, oldV, newV any) Difference {
	segments := childPath(parent, key)
	return Difference{Kind: kind, Path: strings.Join(segments, "."), Segments: segments, Old: oldV, New: newV}
}

// AsMap coerces a structured attribute value into a map. nil is an empty
// map. JSON objects given as bytes or strings are decoded. The second result
// is false when v cannot be read as a map.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		if m == nil {
			return map[string]any{}, true
		}
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case json.RawMessage:
		return decodeObject(m)
	case []byte:
		return decodeObject(m)
	case string:
		if strings.TrimSpace(m) == "" {
			return map[string]any{}, true
		}
		return decodeObject([]byte(m))
	default:
		return map[string]any{}, false
	}
}

func decodeObject(data []byte) (map[string]any, bool) {
	if len(data) == 0 {
		return map[string]any{}, true
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}, false
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, true
}
