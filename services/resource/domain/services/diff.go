package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ghuser/communityhub/services/resource/domain/models"
)

// NoVisibleChange is the edit description recorded when no field differs.
const NoVisibleChange = "no visible field change"

// missingValue renders a field absent on one side of a diff.
const missingValue = "(none)"

// DescribeChanges renders every field whose JSON value differs between
// before and after as "field: old → new", sorted by field name and joined by
// ", ". Store-managed fields are ignored. Values are compared by their
// canonical JSON encoding, so key order and whitespace never count as change.
func DescribeChanges(before, after models.Fields) string {
	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	names := make([]string, 0, len(keys))
	for k := range keys {
		if !models.IsReservedField(k) {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	var changes []string
	for _, name := range names {
		oldRaw, hadOld := before[name]
		newRaw, hasNew := after[name]
		oldVal, newVal := missingValue, missingValue
		if hadOld {
			oldVal = canonical(oldRaw)
		}
		if hasNew {
			newVal = canonical(newRaw)
		}
		if hadOld == hasNew && oldVal == newVal {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s: %s → %s", name, display(oldVal), display(newVal)))
	}

	if len(changes) == 0 {
		return NoVisibleChange
	}
	return strings.Join(changes, ", ")
}

// AddedDescription is the description of an add record.
func AddedDescription(title string) string {
	return fmt.Sprintf("added %q", title)
}

// DeletedDescription is the description of a delete record.
func DeletedDescription(title string) string {
	return fmt.Sprintf("deleted %q", title)
}

// canonical re-encodes raw JSON with sorted object keys and no insignificant
// whitespace. Numbers keep their literal text so integers beyond float64
// precision still compare exactly. Invalid JSON is returned trimmed as-is.
func canonical(raw json.RawMessage) string {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil || dec.More() {
		return strings.TrimSpace(string(raw))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// display unquotes plain JSON strings so descriptions read "title: A → B".
func display(canon string) string {
	if canon == missingValue {
		return canon
	}
	var s string
	if strings.HasPrefix(canon, `"`) && json.Unmarshal([]byte(canon), &s) == nil {
		return s
	}
	return canon
}
