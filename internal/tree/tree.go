// Package tree provides generic navigation helpers over namespace-normalized
// nested documents: maps, sequences and scalars as decoded from JSON.
//
// Source documents mix single occurrences and lists of the same logical
// field, so every read goes through AsSeq rather than branching on arity.
// Map keys are visited in sorted order, keeping traversal deterministic.
package tree

import (
	"sort"
	"strconv"
)

// Find returns the first descendant of node keyed key, searching maps
// depth-first and sequence elements in order. A direct key on a map wins
// over deeper matches. Returns nil when no match exists.
func Find(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		if v, ok := n[key]; ok {
			return v
		}
		for _, k := range sortedKeys(n) {
			if v := Find(n[k], key); v != nil {
				return v
			}
		}
	case []any:
		for _, el := range n {
			if v := Find(el, key); v != nil {
				return v
			}
		}
	}
	return nil
}

// Collect returns every value keyed key anywhere under node, in traversal
// order. A matched value's subtree is not searched again: deeper
// occurrences of the same key belong to that subtree's own scope, and the
// extractor owning that scope decides whether to descend.
func Collect(node any, key string) []any {
	var out []any
	collect(node, key, &out)
	return out
}

func collect(node any, key string, out *[]any) {
	switch n := node.(type) {
	case map[string]any:
		for _, k := range sortedKeys(n) {
			if k == key {
				*out = append(*out, n[k])
				continue
			}
			collect(n[k], key, out)
		}
	case []any:
		for _, el := range n {
			collect(el, key, out)
		}
	}
}

// AsSeq normalizes the singleton/plural ambiguity of source fields: nil
// becomes an empty sequence, a single map or scalar is wrapped in a
// one-element sequence, and a sequence is returned unchanged.
func AsSeq(v any) []any {
	switch s := v.(type) {
	case nil:
		return nil
	case []any:
		return s
	default:
		return []any{v}
	}
}

// Text coerces a scalar or an attribute-and-text shaped node to its usable
// string. Element nodes carry trailing text under "_text"; attribute-style
// nodes carry it under "value". Returns def when nothing usable exists.
func Text(v any, def string) string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return def
		}
		return t
	case map[string]any:
		if s, ok := t["_text"].(string); ok && s != "" {
			return s
		}
		if s := Text(t["value"], ""); s != "" {
			return s
		}
		return def
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return def
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
