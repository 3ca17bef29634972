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

// escapeText writes s to dst with the characters
// reserved in element text replaced by entity
// references. Text without reserved characters is
// written unchanged, so the canonical dialect
// fragments are unaffected.
func escapeText(dst *strings.Builder, s string) {
	for {
		i := strings.IndexAny(s, "&<>")
		if i < 0 {
			dst.WriteString(s)
			return
		}
		dst.WriteString(s[:i])
		switch s[i] {
		case '&':
			dst.WriteString("&amp;")
		case '<':
			dst.WriteString("&lt;")
		case '>':
			dst.WriteString("&gt;")
		}
		s = s[i+1:]
	}
}

// escapeAttr writes s to dst escaped for use inside
// a double-quoted attribute value.
func escapeAttr(dst *strings.Builder, s string) {
	for {
		i := strings.IndexAny(s, `&<>"`)
		if i < 0 {
			dst.WriteString(s)
			return
		}
		dst.WriteString(s[:i])
		switch s[i] {
		case '&':
			dst.WriteString("&amp;")
		case '<':
			dst.WriteString("&lt;")
		case '>':
			dst.WriteString("&gt;")
		case '"':
			dst.WriteString("&quot;")
		}
		s = s[i+1:]
	}
}
