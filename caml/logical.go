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

// LogicalOp is a logical operation
type LogicalOp int

const (
	OpAnd LogicalOp = iota // A AND B
	OpOr                   // A OR B

	maxLogicalOp
)

func (l LogicalOp) String() string {
	switch l {
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	}

	return "<unknown logical op>"
}

func (l LogicalOp) valid() bool {
	return l >= OpAnd && l < maxLogicalOp
}

// Logical is a Node that represents a logical
// connective over exactly two sub-expressions.
// The dialect has no n-ary connective; wider
// conjunctions are built through Fold.
type Logical struct {
	Op          LogicalOp
	Left, Right Node
}

// And yields '<And>' over left and right.
func And(left, right Node) *Logical {
	return &Logical{Op: OpAnd, Left: left, Right: right}
}

// Or yields '<Or>' over left and right.
func Or(left, right Node) *Logical {
	return &Logical{Op: OpOr, Left: left, Right: right}
}

// Fold combines an ordered sequence of one or more
// expressions into a single expression under op.
//
// A single expression is returned unchanged, with no
// connective wrapper. Longer sequences fold
// left-associatively:
//
//	Fold(op, [e1, e2, e3]) = Logical(Logical(e1, e2), e3)
//
// so the original left-to-right operand order is
// preserved in the rendering. Fold fails on an
// out-of-range op, an empty sequence, or a nil element.
func Fold(op LogicalOp, exprs []Node) (Node, error) {
	if !op.valid() {
		return nil, errargf("unknown logical op %d", int(op))
	}
	if len(exprs) == 0 {
		return nil, errargf("%s requires at least one operand", op)
	}
	for i, e := range exprs {
		if e == nil {
			return nil, errargf("%s operand %d is nil", op, i)
		}
	}
	node := exprs[0]
	for _, e := range exprs[1:] {
		node = &Logical{Op: op, Left: node, Right: e}
	}
	return node, nil
}

func (l *Logical) text(dst *strings.Builder) {
	if !l.Op.valid() {
		dst.WriteString("Logical(???)")
		return
	}
	name := l.Op.String()
	dst.WriteByte('<')
	dst.WriteString(name)
	dst.WriteByte('>')
	if l.Left != nil {
		l.Left.text(dst)
	}
	if l.Right != nil {
		l.Right.text(dst)
	}
	dst.WriteString("</")
	dst.WriteString(name)
	dst.WriteByte('>')
}

func (l *Logical) Equals(x Node) bool {
	xl, ok := x.(*Logical)
	return ok && l.Op == xl.Op && Equal(l.Left, xl.Left) && Equal(l.Right, xl.Right)
}

func (l *Logical) walk(v Visitor) {
	if l.Left != nil {
		Walk(v, l.Left)
	}
	if l.Right != nil {
		Walk(v, l.Right)
	}
}

func (l *Logical) check() error {
	if !l.Op.valid() {
		return errcontract(l, "unknown logical op")
	}
	if l.Left == nil || l.Right == nil {
		return errcontract(l, "logical connective requires exactly two operands")
	}
	return nil
}
