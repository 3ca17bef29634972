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
	"github.com/dchest/siphash"
)

// fixed keys so that digests are stable across processes
const (
	digestK0 = 0x63616d6c6b697430 // "camlkit0"
	digestK1 = 0x63616d6c6b697431 // "camlkit1"
)

// Digest returns a 64-bit fingerprint of n's rendered
// markup. Structurally identical trees produce identical
// digests, and digests are stable across processes, so
// they can key deduplication or render caches.
func Digest(n Node) uint64 {
	return siphash.Hash(digestK0, digestK1, []byte(ToString(n)))
}
