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

// ArgError is the error type returned from
// the factory functions and Fold when an
// argument is invalid (an out-of-range kind,
// a missing payload, an empty operand list, ...).
type ArgError struct {
	Msg string
}

// Error implements error
func (a *ArgError) Error() string {
	return a.Msg
}

// ContractError is the error type returned
// from Check when a node is in a state
// inconsistent with its kind.
type ContractError struct {
	At  Node
	Msg string
}

func (c *ContractError) Error() string {
	return fmt.Sprintf("%q violates its contract: %s", ToString(c.At), c.Msg)
}

func errargf(f string, args ...any) *ArgError {
	return &ArgError{Msg: fmt.Sprintf(f, args...)}
}

func errcontract(at Node, msg string) *ContractError {
	return &ContractError{At: at, Msg: msg}
}
