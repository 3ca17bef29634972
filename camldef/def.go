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

// Package camldef compiles declarative query definitions
// into caml expression trees.
//
// A definition is a YAML (or JSON) document describing a
// where clause as nested leaf conditions and all/any
// groups. Definitions are the only configuration surface
// of this module; the caml package itself is a pure
// in-process library.
package camldef

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"

	"github.com/camlkit/camlkit/caml"
)

// Condition is one node of a definition's where clause.
//
// A Condition is either a leaf (Field and Compare set,
// plus the typed Value for non-unary comparisons) or a
// group (exactly one of All or Any set, nested
// arbitrarily). A Condition that is both, or a group
// that is both All and Any, fails to build.
type Condition struct {
	// Field names the compared field for a leaf condition.
	Field string `json:"field,omitempty"`
	// Compare is the comparison name: Eq, Neq, Gt, Geq,
	// Lt, Leq, BeginsWith, Contains, IsNull, IsNotNull,
	// DateRangesOverlap, Includes, or NotIncludes.
	Compare string `json:"compare,omitempty"`
	// Type is the value type name (Text, Integer, Number,
	// Boolean, Date, DateTime, Lookup, LookupId, User,
	// Choice, MultiChoice, Guid, URL, Counter, ModStat,
	// ContentTypeId, CurrentUser, Today).
	// An empty Type means Text.
	Type string `json:"type,omitempty"`
	// Value is the literal text of the operand,
	// parsed according to Type. Multi-choice options
	// are separated by ";#".
	Value string `json:"value,omitempty"`
	// IncludeTime controls the time-of-day component
	// of Date, DateTime, and Today operands.
	IncludeTime bool `json:"includeTime,omitempty"`
	// All nests conditions combined with And.
	All []Condition `json:"all,omitempty"`
	// Any nests conditions combined with Or.
	Any []Condition `json:"any,omitempty"`
}

// Definition is a named declarative query definition.
type Definition struct {
	// Name identifies the query.
	Name string `json:"name,omitempty"`
	// Where is the root of the filter clause.
	Where Condition `json:"where"`
}

// just pick an upper limit to prevent DoS
const maxDefSize = 1024 * 1024

// Parse decodes a definition from YAML or JSON text.
// Unknown fields are rejected.
func Parse(buf []byte) (*Definition, error) {
	if len(buf) > maxDefSize {
		return nil, fmt.Errorf("definition of size %d beyond limit %d", len(buf), maxDefSize)
	}
	d := new(Definition)
	if err := yaml.UnmarshalStrict(buf, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Build compiles the definition's where clause into a
// caml expression tree. The returned tree renders with
// caml.ToString.
func (d *Definition) Build() (caml.Node, error) {
	n, err := build(&d.Where)
	if err != nil && d.Name != "" {
		return nil, fmt.Errorf("definition %q: %w", d.Name, err)
	}
	return n, err
}

// compareOps and valueKinds are the name tables for the
// declarative surface; read-only after initialization.
var compareOps = map[string]caml.OpKind{
	"Eq":                caml.OpEqual,
	"Neq":               caml.OpNotEqual,
	"Gt":                caml.OpGreater,
	"Geq":               caml.OpGreaterEqual,
	"Lt":                caml.OpLess,
	"Leq":               caml.OpLessEqual,
	"BeginsWith":        caml.OpBeginsWith,
	"Contains":          caml.OpContains,
	"IsNull":            caml.OpIsNull,
	"IsNotNull":         caml.OpIsNotNull,
	"DateRangesOverlap": caml.OpDateRangesOverlap,
	"Includes":          caml.OpIncludes,
	"NotIncludes":       caml.OpNotIncludes,
}

var valueKinds = map[string]caml.ValueKind{
	"Text":          caml.TextKind,
	"Integer":       caml.IntegerKind,
	"Number":        caml.NumberKind,
	"Boolean":       caml.BooleanKind,
	"Date":          caml.DateKind,
	"DateTime":      caml.DateTimeKind,
	"Lookup":        caml.LookupKind,
	"LookupId":      caml.LookupIDKind,
	"User":          caml.UserKind,
	"Choice":        caml.ChoiceKind,
	"MultiChoice":   caml.MultiChoiceKind,
	"Guid":          caml.GuidKind,
	"URL":           caml.URLKind,
	"Counter":       caml.CounterKind,
	"ModStat":       caml.ModStatKind,
	"ContentTypeId": caml.ContentTypeIDKind,
	"CurrentUser":   caml.CurrentUserKind,
	"Today":         caml.TodayKind,
}

// validNames returns the sorted, comma-separated key
// list of a name table, for error messages.
func validNames[V any](m map[string]V) string {
	names := lo.Keys(m)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func build(c *Condition) (caml.Node, error) {
	group := len(c.All) > 0 || len(c.Any) > 0
	leaf := c.Field != "" || c.Compare != ""
	switch {
	case group && leaf:
		return nil, fmt.Errorf("condition on field %q cannot also be an all/any group", c.Field)
	case !group && !leaf:
		return nil, fmt.Errorf("empty condition: need field+compare or all/any")
	case len(c.All) > 0 && len(c.Any) > 0:
		return nil, fmt.Errorf("condition cannot set both all and any")
	}
	if group {
		op, items := caml.OpAnd, c.All
		if len(c.Any) > 0 {
			op, items = caml.OpOr, c.Any
		}
		nodes := make([]caml.Node, 0, len(items))
		for i := range items {
			n, err := build(&items[i])
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		}
		return caml.Fold(op, nodes)
	}
	op, ok := compareOps[c.Compare]
	if !ok {
		return nil, fmt.Errorf("unknown compare %q on field %q (valid: %s)",
			c.Compare, c.Field, validNames(compareOps))
	}
	if op == caml.OpIsNull || op == caml.OpIsNotNull {
		if c.Value != "" || c.Type != "" {
			return nil, fmt.Errorf("%s on field %q takes no value", c.Compare, c.Field)
		}
		return caml.NewComparison(op, c.Field, nil)
	}
	v, err := value(c)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", c.Field, err)
	}
	return caml.NewComparison(op, c.Field, v)
}

func value(c *Condition) (*caml.Value, error) {
	typ := c.Type
	if typ == "" {
		typ = "Text"
	}
	kind, ok := valueKinds[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (valid: %s)", typ, validNames(valueKinds))
	}
	switch kind {
	case caml.CurrentUserKind:
		if c.Value != "" {
			return nil, fmt.Errorf("CurrentUser takes no value")
		}
		return caml.CurrentUser(), nil
	case caml.TodayKind:
		if c.Value != "" {
			return nil, fmt.Errorf("Today takes no value")
		}
		return caml.Today(c.IncludeTime), nil
	case caml.IntegerKind, caml.CounterKind, caml.LookupIDKind, caml.UserKind, caml.ModStatKind:
		i, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s value %q: %w", typ, c.Value, err)
		}
		return caml.NewValue(kind, i)
	case caml.NumberKind:
		f, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("Number value %q: %w", c.Value, err)
		}
		return caml.NewValue(kind, f)
	case caml.BooleanKind:
		b, err := strconv.ParseBool(c.Value)
		if err != nil {
			return nil, fmt.Errorf("Boolean value %q: %w", c.Value, err)
		}
		return caml.NewValue(kind, b)
	case caml.DateKind, caml.DateTimeKind:
		t, err := parseDate(c.Value)
		if err != nil {
			return nil, fmt.Errorf("%s value %q: %w", typ, c.Value, err)
		}
		return caml.NewDateValue(kind, t, c.IncludeTime)
	}
	return caml.NewValue(kind, c.Value)
}

// parseDate accepts RFC 3339 timestamps and bare
// calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
