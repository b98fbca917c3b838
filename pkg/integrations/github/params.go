package github

import (
	"maps"
	"slices"
)

// Param is a single query parameter. Params are kept in ordered slices so
// the generated query string is deterministic.
type Param struct {
	Key   string
	Value string
}

// Reserved search keys. Defaults with these names are never sent.
const (
	ParamQuery = "q"
	ParamSort  = "sort"
	ParamOrder = "order"
)

// IsReserved reports whether key is one of the search keys q, sort or order.
func IsReserved(key string) bool {
	switch key {
	case ParamQuery, ParamSort, ParamOrder:
		return true
	}
	return false
}

// MergeParams combines explicit parameters with defaults.
//
// Every explicit pair is kept, in order, with its value (an empty value is
// still emitted). Defaults follow in their own order, except that a default
// is dropped when its key is reserved or already present among the explicit
// pairs. A reserved default is dropped even when no explicit value exists.
func MergeParams(explicit, defaults []Param) []Param {
	out := make([]Param, 0, len(explicit)+len(defaults))
	seen := make(map[string]bool, len(explicit))
	for _, p := range explicit {
		out = append(out, p)
		seen[p.Key] = true
	}
	for _, p := range defaults {
		if IsReserved(p.Key) || seen[p.Key] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParamsFromMap converts a mapping into params sorted by key.
func ParamsFromMap(m map[string]string) []Param {
	params := make([]Param, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		params = append(params, Param{Key: k, Value: m[k]})
	}
	return params
}
