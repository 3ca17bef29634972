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

// Package caml implements the AST representation
// of CAML filter predicates.
//
// Each of the AST node types satisfies the Node
// interface. Trees are built through the factory
// functions (Eq, IsNull, And, Fold, ...) and the
// typed value constructors, and rendered to markup
// text with ToString.
//
// The critical entry points for this package are
// the factories, Fold, ToString, Walk, and Check.
// Nodes are immutable once constructed; rendering
// is a pure function of the tree and is safe to
// invoke concurrently, even on a shared tree.
package caml
