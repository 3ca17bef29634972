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
	"fmt"
)

type checkwalk struct {
	errors []error
}

func (c *checkwalk) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	if err := n.check(); err != nil {
		c.errors = append(c.errors, err)
		return nil
	}
	return c
}

func combine(err []error) error {
	if len(err) == 1 {
		return err[0]
	}
	return fmt.Errorf("%w and %d other errors", err[0], len(err)-1)
}

// Check walks the AST given by n and re-validates the
// construction invariants of every node in the tree.
//
// Trees built exclusively through the factory functions
// always pass; Check guards trees assembled by hand
// against states inconsistent with their kinds (a unary
// comparison carrying an operand, a connective missing
// a child, a sentinel value holding a payload, ...).
func Check(n Node) error {
	if n == nil {
		return errargf("nil expression")
	}
	c := &checkwalk{}
	Walk(c, n)
	if c.errors == nil {
		return nil
	}
	return combine(c.errors)
}
