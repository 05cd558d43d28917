// Package validate constructs canonical typed entities from normalized
// generic records. Monster and item schemas are strict (unrecognized keys
// rejected); the dialogue schema tolerates extra keys because generator
// output for trees is noisier. All invariants are checked as pure predicates
// over the fully decoded record so no check ever observes partial state.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lunarforge/assetforge/internal/core/model"
)

// Violation is one field/constraint failure.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

// Error carries every violation found in a record, not just the first one.
type Error struct {
	RecordKind model.Kind
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("%s record invalid: %s", e.RecordKind, strings.Join(msgs, "; "))
}

// Entity builds a validated entity of the given kind from a normalized
// record. The returned entity is immutable and safe to hand to persistence.
func Entity(kind model.Kind, rec map[string]any) (model.Entity, error) {
	switch kind {
	case model.KindMonster:
		m, err := Monster(rec)
		if err != nil {
			return nil, err
		}
		return m, nil
	case model.KindItem:
		it, err := Item(rec)
		if err != nil {
			return nil, err
		}
		return it, nil
	case model.KindDialogue:
		d, err := Dialogue(rec)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}
}

// violations accumulates field errors during one validation pass.
type violations struct {
	kind model.Kind
	list []Violation
}

func (v *violations) addf(field, format string, args ...any) {
	v.list = append(v.list, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &Error{RecordKind: v.kind, Violations: v.list}
}

// copyRecord deep-copies a generic record so default injection never
// mutates the caller's map.
func copyRecord(rec map[string]any) (map[string]any, error) {
	buf, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("record not serializable: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setDefault(m map[string]any, key string, val any) {
	if v, ok := m[key]; !ok || v == nil {
		m[key] = val
	}
}

// decodeStrict unmarshals a record into dst rejecting unknown keys at every
// nesting level.
func decodeStrict(rec map[string]any, dst any) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// decodeLoose unmarshals a record into dst ignoring unknown keys but still
// failing on declared-field type mismatches.
func decodeLoose(rec map[string]any, dst any) error {
	buf, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}

// requireKeys records a violation for every listed key that is absent or
// explicitly null.
func requireKeys(rec map[string]any, v *violations, keys ...string) {
	for _, k := range keys {
		if val, ok := rec[k]; !ok || val == nil {
			v.addf(k, "required field missing")
		}
	}
}

// checkObjectList enforces the wire shape for nested list fields: arrays of
// objects, never arrays of bare strings or other scalars.
func checkObjectList(raw any, v *violations, field string) {
	arr, ok := raw.([]any)
	if !ok {
		return // absent or mistyped; the decode step reports those
	}
	for _, el := range arr {
		if _, ok := el.(map[string]any); !ok {
			v.addf(field, "must be an array of objects, got %T element", el)
			return
		}
	}
}

func strLen(v *violations, field, val string, min, max int) {
	n := utf8.RuneCountInString(val)
	if n < min || n > max {
		v.addf(field, "length must be between %d and %d characters, got %d", min, max, n)
	}
}

func intMin(v *violations, field string, val, min int) {
	if val < min {
		v.addf(field, "must be at least %d, got %d", min, val)
	}
}

func intRange(v *violations, field string, val, min, max int) {
	if val < min || val > max {
		v.addf(field, "must be between %d and %d, got %d", min, max, val)
	}
}
