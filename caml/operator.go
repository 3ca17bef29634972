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
	"strings"
)

// OpKind is a comparison operation.
type OpKind int

const (
	// OpEqual describes field = value
	OpEqual OpKind = iota

	// OpNotEqual describes field <> value
	OpNotEqual

	// OpGreater describes field > value
	OpGreater

	// OpGreaterEqual describes field >= value
	OpGreaterEqual

	// OpLess describes field < value
	OpLess

	// OpLessEqual describes field <= value
	OpLessEqual

	// OpBeginsWith describes a prefix match on a text field.
	OpBeginsWith

	// OpContains describes a substring match on a text field.
	OpContains

	// OpIsNull describes the unary test for an empty field.
	OpIsNull

	// OpIsNotNull describes the unary test for a non-empty field.
	OpIsNotNull

	// OpDateRangesOverlap describes the overlap test
	// between a recurrence range and a date value.
	OpDateRangesOverlap

	// OpIncludes describes membership of a value
	// in a multi-valued field.
	OpIncludes

	// OpNotIncludes describes non-membership of a value
	// in a multi-valued field.
	OpNotIncludes

	maxOpKind
)

// opTags maps each comparison to its dialect element
// name; the mapping is frozen by the markup consumers.
// Read-only after initialization.
var opTags = [maxOpKind]string{
	OpEqual:             "Eq",
	OpNotEqual:          "Neq",
	OpGreater:           "Gt",
	OpGreaterEqual:      "Geq",
	OpLess:              "Lt",
	OpLessEqual:         "Leq",
	OpBeginsWith:        "BeginsWith",
	OpContains:          "Contains",
	OpIsNull:            "IsNull",
	OpIsNotNull:         "IsNotNull",
	OpDateRangesOverlap: "DateRangesOverlap",
	OpIncludes:          "Includes",
	OpNotIncludes:       "NotIncludes",
}

// tag returns the dialect element name
// for this comparison, or "" if o is
// out of range.
func (o OpKind) tag() string {
	if !o.valid() {
		return ""
	}
	return opTags[o]
}

func (o OpKind) String() string {
	if t := o.tag(); t != "" {
		return t
	}
	return "<unknown comparison op>"
}

func (o OpKind) valid() bool {
	return o >= OpEqual && o < maxOpKind
}

// unary returns whether the comparison
// takes no value operand.
func (o OpKind) unary() bool {
	return o == OpIsNull || o == OpIsNotNull
}

// Comparison is a Node that represents a single
// field comparison. Unary comparisons (IsNull,
// IsNotNull) hold no Value; every other kind holds
// exactly one.
type Comparison struct {
	// Op is the comparison operation.
	Op OpKind
	// Field names the compared field.
	Field string
	// Value is the right-hand operand;
	// nil iff Op is unary.
	Value *Value
}

// NewComparison constructs a comparison node.
//
// NewComparison fails if op is out of range, if field
// is empty, or if the presence of value disagrees with
// the arity of op (unary comparisons take none; all
// others require exactly one).
func NewComparison(op OpKind, field string, value *Value) (*Comparison, error) {
	if !op.valid() {
		return nil, errargf("unknown comparison op %d", int(op))
	}
	if field == "" {
		return nil, errargf("%s requires a field name", op)
	}
	if op.unary() {
		if value != nil {
			return nil, errargf("%s takes no value operand", op)
		}
	} else if value == nil {
		return nil, errargf("%s requires a value operand", op)
	}
	return &Comparison{Op: op, Field: field, Value: value}, nil
}

// CompareOf constructs a comparison from a raw
// (kind, payload) pair, building the Value through
// NewValue. Use the named factories or NewComparison
// when the Value is already built.
func CompareOf(op OpKind, field string, kind ValueKind, payload any) (*Comparison, error) {
	v, err := NewValue(kind, payload)
	if err != nil {
		return nil, err
	}
	return NewComparison(op, field, v)
}

// Eq yields '<Eq>' on field and v.
func Eq(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpEqual, field, v)
}

// Neq yields '<Neq>' on field and v.
func Neq(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpNotEqual, field, v)
}

// Gt yields '<Gt>' on field and v.
func Gt(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpGreater, field, v)
}

// Geq yields '<Geq>' on field and v.
func Geq(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpGreaterEqual, field, v)
}

// Lt yields '<Lt>' on field and v.
func Lt(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpLess, field, v)
}

// Leq yields '<Leq>' on field and v.
func Leq(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpLessEqual, field, v)
}

// BeginsWith yields the prefix match on field and v.
func BeginsWith(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpBeginsWith, field, v)
}

// Contains yields the substring match on field and v.
func Contains(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpContains, field, v)
}

// DateRangesOverlap yields the recurrence overlap
// test on field and v.
func DateRangesOverlap(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpDateRangesOverlap, field, v)
}

// Includes yields the multi-value membership
// test on field and v.
func Includes(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpIncludes, field, v)
}

// NotIncludes yields the multi-value non-membership
// test on field and v.
func NotIncludes(field string, v *Value) (*Comparison, error) {
	return NewComparison(OpNotIncludes, field, v)
}

// IsNull yields the unary test for an empty field.
func IsNull(field string) (*Comparison, error) {
	return NewComparison(OpIsNull, field, nil)
}

// IsNotNull yields the unary test for a non-empty field.
func IsNotNull(field string) (*Comparison, error) {
	return NewComparison(OpIsNotNull, field, nil)
}

func (c *Comparison) text(dst *strings.Builder) {
	tag := c.Op.tag()
	if tag == "" {
		dst.WriteString("Comparison(???)")
		return
	}
	dst.WriteByte('<')
	dst.WriteString(tag)
	dst.WriteByte('>')
	dst.WriteString(`<FieldRef Name="`)
	escapeAttr(dst, c.Field)
	dst.WriteByte('"')
	if c.Value != nil && c.Value.Kind == LookupIDKind {
		dst.WriteString(` LookupId="TRUE"`)
	}
	dst.WriteString("/>")
	if c.Value != nil {
		c.Value.text(dst)
	}
	dst.WriteString("</")
	dst.WriteString(tag)
	dst.WriteByte('>')
}

func (c *Comparison) Equals(x Node) bool {
	xc, ok := x.(*Comparison)
	if !ok || c.Op != xc.Op || c.Field != xc.Field {
		return false
	}
	if c.Value == nil {
		return xc.Value == nil
	}
	return xc.Value != nil && c.Value.Equals(xc.Value)
}

func (c *Comparison) walk(v Visitor) {
	if c.Value != nil {
		Walk(v, c.Value)
	}
}

func (c *Comparison) check() error {
	if !c.Op.valid() {
		return errcontract(c, "unknown comparison op")
	}
	if c.Field == "" {
		return errcontract(c, "empty field name")
	}
	if c.Op.unary() {
		if c.Value != nil {
			return errcontract(c, "unary comparison carries a value operand")
		}
	} else if c.Value == nil {
		return errcontract(c, "comparison is missing its value operand")
	}
	return nil
}
