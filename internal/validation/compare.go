package validation

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/jonathan/datacard-transformer/internal/tree"
	"github.com/jonathan/datacard-transformer/internal/types"
)

// compareDocuments walks both documents key by key. Comparison is
// exhaustive: a mismatch never stops the remaining fields from being
// compared. Datasheets are handled separately because they are matched by
// name rather than position.
func compareDocuments(target, reference map[string]any, r *types.Report) {
	for _, key := range unionKeys(target, reference) {
		if key == "datasheets" {
			continue
		}
		severity := types.SeverityInfo
		if essentialDocumentFields[key] {
			severity = types.SeverityEssential
		}
		tv, tok := target[key]
		rv, rok := reference[key]
		switch {
		case !tok:
			record(r, key, types.KindMissingKey, severity, scalarOnly(rv), nil)
		case !rok:
			// The reference declares no expectation for this key.
			record(r, key, types.KindUnexpectedKey, types.SeverityInfo, nil, scalarOnly(tv))
		default:
			compareValue(key, tv, rv, severity, r)
		}
	}
	compareDatasheets(target, reference, r)
}

func compareValue(path string, tv, rv any, severity string, r *types.Report) {
	switch rval := rv.(type) {
	case map[string]any:
		tval, ok := tv.(map[string]any)
		if !ok {
			record(r, path, types.KindTypeMismatch, severity, typeName(rv), typeName(tv))
			return
		}
		for _, key := range unionKeys(tval, rval) {
			childPath := path + "." + key
			cv, cok := tval[key]
			ev, eok := rval[key]
			switch {
			case !cok:
				record(r, childPath, types.KindMissingKey, severity, scalarOnly(ev), nil)
			case !eok:
				record(r, childPath, types.KindUnexpectedKey, types.SeverityInfo, nil, scalarOnly(cv))
			default:
				compareValue(childPath, cv, ev, severity, r)
			}
		}
	case []any:
		tval, ok := tv.([]any)
		if !ok {
			record(r, path, types.KindTypeMismatch, severity, typeName(rv), typeName(tv))
			return
		}
		if len(tval) != len(rval) {
			record(r, path, types.KindCountMismatch, severity, len(rval), len(tval))
		}
		n := min(len(tval), len(rval))
		for i := 0; i < n; i++ {
			compareValue(fmt.Sprintf("%s[%d]", path, i), tval[i], rval[i], severity, r)
		}
	default:
		if !reflect.DeepEqual(tv, rv) {
			record(r, path, types.KindValueMismatch, severity, rv, tv)
		}
	}
}

// compareDatasheets matches datasheets by name: generated ids legitimately
// differ between target and reference.
func compareDatasheets(target, reference map[string]any, r *types.Report) {
	targetSheets := asList(target["datasheets"])
	referenceSheets := asList(reference["datasheets"])

	if len(targetSheets) != len(referenceSheets) {
		record(r, "datasheets", types.KindCountMismatch, types.SeverityEssential, len(referenceSheets), len(targetSheets))
	}

	byName := make(map[string]map[string]any, len(referenceSheets))
	for _, raw := range referenceSheets {
		if m, ok := raw.(map[string]any); ok {
			byName[tree.Text(m["name"], "")] = m
		}
	}

	matched := map[string]bool{}
	for i, raw := range targetSheets {
		sheet, ok := raw.(map[string]any)
		if !ok {
			record(r, fmt.Sprintf("datasheets[%d]", i), types.KindTypeMismatch, types.SeverityEssential, "object", typeName(raw))
			continue
		}
		name := tree.Text(sheet["name"], "")
		ref, ok := byName[name]
		if !ok {
			record(r, fmt.Sprintf("datasheets[%d]", i), types.KindUnexpectedKey, types.SeverityEssential, nil, name)
			continue
		}
		matched[name] = true
		compareDatasheet(fmt.Sprintf("datasheets[%d]", i), sheet, ref, r)
	}

	for _, raw := range referenceSheets {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if name := tree.Text(m["name"], ""); !matched[name] {
			record(r, "datasheets", types.KindMissingKey, types.SeverityEssential, name, nil)
		}
	}
}

func compareDatasheet(path string, sheet, ref map[string]any, r *types.Report) {
	for _, key := range unionKeys(sheet, ref) {
		severity := types.SeverityInfo
		if essentialDatasheetFields[key] {
			severity = types.SeverityEssential
		}
		childPath := path + "." + key
		tv, tok := sheet[key]
		rv, rok := ref[key]
		switch {
		case !tok:
			record(r, childPath, types.KindMissingKey, severity, scalarOnly(rv), nil)
		case !rok:
			record(r, childPath, types.KindUnexpectedKey, types.SeverityInfo, nil, scalarOnly(tv))
		default:
			compareValue(childPath, tv, rv, severity, r)
		}
	}
}

func record(r *types.Report, path, kind, severity string, expected, actual any) {
	r.Mismatches = append(r.Mismatches, types.Mismatch{
		Path:     path,
		Kind:     kind,
		Severity: severity,
		Expected: expected,
		Actual:   actual,
	})
}

func unionKeys(a, b map[string]any) []string {
	set := make(map[string]bool, len(a)+len(b))
	for k := range a {
		set[k] = true
	}
	for k := range b {
		set[k] = true
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// scalarOnly keeps report payloads readable: containers are elided.
func scalarOnly(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		return nil
	default:
		return v
	}
}

func typeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
