package content

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Change describes one detected leaf-level difference between two documents.
// Arrays are treated as atomic leaves, so a reordered list yields a single
// change at the list's path instead of per-index noise.
type Change struct {
	Path     string `json:"path"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// Diff compares two JSON-serializable values and returns the flat list of
// leaf changes. Plain objects are recursed over the union of their keys;
// anything else (primitives, arrays, mixed shapes) is compared whole by
// serialized equality. Missing keys compare as null.
func Diff(oldDoc, newDoc any) []Change {
	return diffValues(normalize(oldDoc), normalize(newDoc), "")
}

func diffValues(oldV, newV any, path string) []Change {
	if jsonEqual(oldV, newV) {
		return nil
	}

	oldMap, oldIsMap := oldV.(map[string]any)
	newMap, newIsMap := newV.(map[string]any)
	if !oldIsMap || !newIsMap {
		return []Change{{Path: path, OldValue: oldV, NewValue: newV}}
	}

	keys := make(map[string]struct{}, len(oldMap)+len(newMap))
	for k := range oldMap {
		keys[k] = struct{}{}
	}
	for k := range newMap {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var changes []Change
	for _, k := range sorted {
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}
		changes = append(changes, diffValues(oldMap[k], newMap[k], childPath)...)
	}
	return changes
}

// normalize round-trips a value through JSON so structs, maps, and decoded
// payloads all compare on the same representation.
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

func jsonEqual(a, b any) bool {
	ab, errA := json.Marshal(a)
	bb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return errA == nil && errB == nil
	}
	return bytes.Equal(ab, bb)
}
