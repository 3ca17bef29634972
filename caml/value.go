// Copyright 2026 Camlkit, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package caml

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"golang.org/x/exp/slices"
)

// ValueKind selects the semantic type of a Value.
//
// The set is closed: consumers of the emitted markup
// dispatch on the Type attribute text, so new kinds are
// added here and in the corresponding switches, never
// through open-ended extension.
type ValueKind int

const (
	// TextKind is a plain text literal.
	TextKind ValueKind = iota

	// IntegerKind is a signed integer literal.
	IntegerKind

	// NumberKind is a floating-point literal.
	NumberKind

	// BooleanKind is a boolean literal,
	// rendered as the dialect's 1/0 flags.
	BooleanKind

	// DateKind is a calendar-date literal.
	// The time-of-day component renders only
	// when IncludeTime is set.
	DateKind

	// DateTimeKind is a date-and-time literal.
	// Like DateKind, the time-of-day component
	// renders only when IncludeTime is set.
	DateTimeKind

	// LookupKind compares a lookup field
	// by its display text.
	LookupKind

	// LookupIDKind compares a lookup field by the
	// referenced row id; the enclosing comparison
	// marks its field reference with LookupId="TRUE".
	LookupIDKind

	// UserKind is a user identifier literal.
	UserKind

	// ChoiceKind is a single-choice literal.
	ChoiceKind

	// MultiChoiceKind is a multi-choice literal;
	// the options render joined by the dialect's
	// ";#" separator.
	MultiChoiceKind

	// GuidKind is a globally-unique identifier
	// in canonical hyphenated form.
	GuidKind

	// URLKind is a URL literal.
	URLKind

	// CounterKind is an auto-numbered row id literal.
	CounterKind

	// ModStatKind is a moderation-status literal.
	ModStatKind

	// ContentTypeIDKind is a content-type identifier literal.
	ContentTypeIDKind

	// CurrentUserKind is the sentinel resolved by the
	// consumer to the calling user; it carries no payload
	// and renders as a fixed <UserID/> fragment.
	CurrentUserKind

	// TodayKind is the sentinel resolved by the consumer
	// to the current date; it carries no payload.
	TodayKind

	maxValueKind
)

// kindNames is the diagnostic name table for ValueKind;
// read-only after initialization.
var kindNames = [maxValueKind]string{
	TextKind:          "Text",
	IntegerKind:       "Integer",
	NumberKind:        "Number",
	BooleanKind:       "Boolean",
	DateKind:          "Date",
	DateTimeKind:      "DateTime",
	LookupKind:        "Lookup",
	LookupIDKind:      "LookupId",
	UserKind:          "User",
	ChoiceKind:        "Choice",
	MultiChoiceKind:   "MultiChoice",
	GuidKind:          "Guid",
	URLKind:           "URL",
	CounterKind:       "Counter",
	ModStatKind:       "ModStat",
	ContentTypeIDKind: "ContentTypeId",
	CurrentUserKind:   "CurrentUser",
	TodayKind:         "Today",
}

func (k ValueKind) String() string {
	if !k.valid() {
		return "<unknown value kind>"
	}
	return kindNames[k]
}

// typeName returns the Type attribute text
// the dialect assigns to this kind, or ""
// for the sentinel kinds, which render as
// dedicated elements instead.
func (k ValueKind) typeName() string {
	switch k {
	case TextKind:
		return "Text"
	case IntegerKind:
		return "Integer"
	case NumberKind:
		return "Number"
	case BooleanKind:
		return "Boolean"
	case DateKind, DateTimeKind:
		return "DateTime"
	case LookupKind, LookupIDKind:
		return "Lookup"
	case UserKind:
		return "User"
	case ChoiceKind:
		return "Choice"
	case MultiChoiceKind:
		return "MultiChoice"
	case GuidKind:
		return "Guid"
	case URLKind:
		return "URL"
	case CounterKind:
		return "Counter"
	case ModStatKind:
		return "ModStat"
	case ContentTypeIDKind:
		return "ContentTypeId"
	}
	return ""
}

func (k ValueKind) valid() bool {
	return k >= TextKind && k < maxValueKind
}

// sentinel returns whether this kind is resolved
// by the markup consumer at evaluation time
// and therefore carries no payload.
func (k ValueKind) sentinel() bool {
	return k == CurrentUserKind || k == TodayKind
}

// dated returns whether IncludeTime is
// meaningful for this kind.
func (k ValueKind) dated() bool {
	return k == DateKind || k == DateTimeKind
}

// Value is a Node that represents a typed literal
// or a sentinel operand of a comparison.
//
// Values are immutable once constructed; build them
// through NewValue, NewDateValue, or the typed
// constructors (Text, Integer, Guid, ...).
type Value struct {
	// Kind selects the semantic type.
	Kind ValueKind
	// IncludeTime controls whether date-carrying
	// values render a time-of-day component. It is
	// interpreted only when Kind is DateKind,
	// DateTimeKind, or TodayKind.
	IncludeTime bool
	// Raw is the literal payload;
	// nil for the sentinel kinds.
	Raw any
}

// NewValue constructs a literal Value of the given kind.
//
// NewValue fails if kind is out of range, if a sentinel
// kind is given a payload, or if a literal kind is given
// a nil payload or one of an unsupported dynamic type.
func NewValue(kind ValueKind, payload any) (*Value, error) {
	if !kind.valid() {
		return nil, errargf("unknown value kind %d", int(kind))
	}
	if kind.sentinel() {
		if payload != nil {
			return nil, errargf("%s takes no payload", kind)
		}
		return &Value{Kind: kind}, nil
	}
	if payload == nil {
		return nil, errargf("%s value requires a payload", kind)
	}
	if _, ok := rawText(kind, payload, false); !ok {
		return nil, errargf("%s value cannot hold a payload of type %T", kind, payload)
	}
	return &Value{Kind: kind, Raw: payload}, nil
}

// NewDateValue constructs a date-carrying Value.
// kind must be DateKind or DateTimeKind.
func NewDateValue(kind ValueKind, t time.Time, includeTime bool) (*Value, error) {
	if !kind.dated() {
		return nil, errargf("%s is not a date-carrying value kind", kind)
	}
	return &Value{Kind: kind, IncludeTime: includeTime, Raw: t}, nil
}

// Text yields a plain text literal.
func Text(s string) *Value {
	return &Value{Kind: TextKind, Raw: s}
}

// Integer yields an integer literal.
func Integer(i int64) *Value {
	return &Value{Kind: IntegerKind, Raw: i}
}

// Number yields a floating-point literal.
func Number(f float64) *Value {
	return &Value{Kind: NumberKind, Raw: f}
}

// Bool yields a boolean literal.
func Bool(b bool) *Value {
	return &Value{Kind: BooleanKind, Raw: b}
}

// Date yields a calendar-date literal
// with no time-of-day component.
func Date(t time.Time) *Value {
	return &Value{Kind: DateKind, Raw: t}
}

// DateTime yields a date-and-time literal
// with the time-of-day component included.
func DateTime(t time.Time) *Value {
	return &Value{Kind: DateTimeKind, IncludeTime: true, Raw: t}
}

// Lookup yields a lookup literal compared
// by display text.
func Lookup(s string) *Value {
	return &Value{Kind: LookupKind, Raw: s}
}

// LookupID yields a lookup literal compared
// by the referenced row id.
func LookupID(id int64) *Value {
	return &Value{Kind: LookupIDKind, Raw: id}
}

// User yields a user identifier literal.
func User(id int64) *Value {
	return &Value{Kind: UserKind, Raw: id}
}

// Choice yields a single-choice literal.
func Choice(s string) *Value {
	return &Value{Kind: ChoiceKind, Raw: s}
}

// MultiChoice yields a multi-choice literal.
func MultiChoice(options ...string) *Value {
	return &Value{Kind: MultiChoiceKind, Raw: slices.Clone(options)}
}

// Guid yields a globally-unique identifier literal.
func Guid(u uuid.UUID) *Value {
	return &Value{Kind: GuidKind, Raw: u}
}

// URL yields a URL literal.
func URL(s string) *Value {
	return &Value{Kind: URLKind, Raw: s}
}

// Counter yields a row id literal.
func Counter(i int64) *Value {
	return &Value{Kind: CounterKind, Raw: i}
}

// ModStat yields a moderation-status literal.
func ModStat(i int64) *Value {
	return &Value{Kind: ModStatKind, Raw: i}
}

// ContentTypeID yields a content-type identifier literal.
func ContentTypeID(s string) *Value {
	return &Value{Kind: ContentTypeIDKind, Raw: s}
}

// CurrentUser yields the sentinel resolved by the
// consumer to the calling user. It always renders
// the same fixed fragment.
func CurrentUser() *Value {
	return &Value{Kind: CurrentUserKind}
}

// Today yields the sentinel resolved by the consumer
// to the current date, optionally including the
// time of day.
func Today(includeTime bool) *Value {
	return &Value{Kind: TodayKind, IncludeTime: includeTime}
}

// rawText returns the canonical literal text for raw
// under the given kind, or ok=false if raw's dynamic
// type is not acceptable for the kind. The sentinel
// kinds have no literal text and are never passed here.
func rawText(kind ValueKind, raw any, includeTime bool) (text string, ok bool) {
	switch kind {
	case TextKind, LookupKind, ChoiceKind, URLKind, ContentTypeIDKind:
		s, ok := raw.(string)
		return s, ok
	case IntegerKind, CounterKind, LookupIDKind, UserKind, ModStatKind:
		return intText(raw)
	case NumberKind:
		switch f := raw.(type) {
		case float64:
			return strconv.FormatFloat(f, 'g', -1, 64), true
		case float32:
			return strconv.FormatFloat(float64(f), 'g', -1, 32), true
		}
		return intText(raw)
	case BooleanKind:
		b, ok := raw.(bool)
		if !ok {
			return "", false
		}
		if b {
			return "1", true
		}
		return "0", true
	case DateKind, DateTimeKind:
		t, ok := raw.(time.Time)
		if !ok {
			return "", false
		}
		t = t.UTC()
		if includeTime {
			return t.Format("2006-01-02T15:04:05Z"), true
		}
		return t.Format("2006-01-02"), true
	case GuidKind:
		switch g := raw.(type) {
		case uuid.UUID:
			return g.String(), true
		case string:
			return g, true
		}
		return "", false
	case MultiChoiceKind:
		switch m := raw.(type) {
		case []string:
			return strings.Join(m, ";#"), true
		case string:
			return m, true
		}
		return "", false
	}
	return "", false
}

func intText(raw any) (string, bool) {
	switch i := raw.(type) {
	case int:
		return strconv.FormatInt(int64(i), 10), true
	case int32:
		return strconv.FormatInt(int64(i), 10), true
	case int64:
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}

func (v *Value) text(dst *strings.Builder) {
	switch v.Kind {
	case CurrentUserKind:
		dst.WriteString("<UserID/>")
		return
	case TodayKind:
		if v.IncludeTime {
			dst.WriteString(`<Today IncludeTimeValue="TRUE"/>`)
		} else {
			dst.WriteString("<Today/>")
		}
		return
	}
	dst.WriteString(`<Value Type="`)
	dst.WriteString(v.Kind.typeName())
	dst.WriteByte('"')
	if v.Kind.dated() && v.IncludeTime {
		dst.WriteString(` IncludeTimeValue="TRUE"`)
	}
	dst.WriteByte('>')
	s, _ := rawText(v.Kind, v.Raw, v.IncludeTime)
	escapeText(dst, s)
	dst.WriteString("</Value>")
}

func (v *Value) Equals(x Node) bool {
	xv, ok := x.(*Value)
	if !ok || v.Kind != xv.Kind || v.IncludeTime != xv.IncludeTime {
		return false
	}
	if v.Kind.sentinel() {
		return true
	}
	// payloads of different dynamic types are equal
	// if their canonical literal text agrees
	a, aok := rawText(v.Kind, v.Raw, v.IncludeTime)
	b, bok := rawText(xv.Kind, xv.Raw, xv.IncludeTime)
	return aok && bok && a == b
}

func (v *Value) walk(Visitor) {}

func (v *Value) check() error {
	if !v.Kind.valid() {
		return errcontract(v, "unknown value kind")
	}
	if v.Kind.sentinel() {
		if v.Raw != nil {
			return errcontract(v, "sentinel value carries a payload")
		}
		return nil
	}
	if v.Raw == nil {
		return errcontract(v, "literal value has no payload")
	}
	if _, ok := rawText(v.Kind, v.Raw, v.IncludeTime); !ok {
		return errcontract(v, "payload type inconsistent with value kind")
	}
	return nil
}
