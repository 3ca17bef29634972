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
	"testing"
	"time"

	"github.com/google/uuid"
)

// construct a comparison, failing the test on error
func mkcmp(t *testing.T, op OpKind, field string, v *Value) *Comparison {
	t.Helper()
	c, err := NewComparison(op, field, v)
	if err != nil {
		t.Fatalf("%s on %q: %s", op, field, err)
	}
	return c
}

func mkfold(t *testing.T, op LogicalOp, exprs ...Node) Node {
	t.Helper()
	n, err := Fold(op, exprs)
	if err != nil {
		t.Fatalf("fold %s: %s", op, err)
	}
	return n
}

func TestToString(t *testing.T) {
	mod := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	testcases := []struct {
		in   func(t *testing.T) Node
		want string
	}{
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Title", Text("Report")) },
			`<Eq><FieldRef Name="Title"/><Value Type="Text">Report</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpNotEqual, "Status", Choice("Closed")) },
			`<Neq><FieldRef Name="Status"/><Value Type="Choice">Closed</Value></Neq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpGreater, "ID", Counter(42)) },
			`<Gt><FieldRef Name="ID"/><Value Type="Counter">42</Value></Gt>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpGreaterEqual, "Total", Number(3.5)) },
			`<Geq><FieldRef Name="Total"/><Value Type="Number">3.5</Value></Geq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpLess, "Count", Integer(-7)) },
			`<Lt><FieldRef Name="Count"/><Value Type="Integer">-7</Value></Lt>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpLessEqual, "Modified", Date(mod)) },
			`<Leq><FieldRef Name="Modified"/><Value Type="DateTime">2022-03-04</Value></Leq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpGreater, "Modified", DateTime(mod)) },
			`<Gt><FieldRef Name="Modified"/><Value Type="DateTime" IncludeTimeValue="TRUE">2022-03-04T05:06:07Z</Value></Gt>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Archived", Bool(true)) },
			`<Eq><FieldRef Name="Archived"/><Value Type="Boolean">1</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpNotEqual, "Archived", Bool(false)) },
			`<Neq><FieldRef Name="Archived"/><Value Type="Boolean">0</Value></Neq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpBeginsWith, "FileName", Text("report-")) },
			`<BeginsWith><FieldRef Name="FileName"/><Value Type="Text">report-</Value></BeginsWith>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpContains, "Body", Text("urgent")) },
			`<Contains><FieldRef Name="Body"/><Value Type="Text">urgent</Value></Contains>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpIsNull, "Editor", nil) },
			`<IsNull><FieldRef Name="Editor"/></IsNull>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpIsNotNull, "Attachments", nil) },
			`<IsNotNull><FieldRef Name="Attachments"/></IsNotNull>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpDateRangesOverlap, "EventDate", Today(false)) },
			`<DateRangesOverlap><FieldRef Name="EventDate"/><Today/></DateRangesOverlap>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpIncludes, "Tags", MultiChoice("red", "blue")) },
			`<Includes><FieldRef Name="Tags"/><Value Type="MultiChoice">red;#blue</Value></Includes>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpNotIncludes, "Tags", Choice("green")) },
			`<NotIncludes><FieldRef Name="Tags"/><Value Type="Choice">green</Value></NotIncludes>`,
		},
		{
			// lookup-by-id marks the field reference
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Category", LookupID(7)) },
			`<Eq><FieldRef Name="Category" LookupId="TRUE"/><Value Type="Lookup">7</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Category", Lookup("Finance")) },
			`<Eq><FieldRef Name="Category"/><Value Type="Lookup">Finance</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Author", CurrentUser()) },
			`<Eq><FieldRef Name="Author"/><UserID/></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "AssignedTo", User(12)) },
			`<Eq><FieldRef Name="AssignedTo"/><Value Type="User">12</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpGreaterEqual, "Expires", Today(true)) },
			`<Geq><FieldRef Name="Expires"/><Today IncludeTimeValue="TRUE"/></Geq>`,
		},
		{
			func(t *testing.T) Node {
				return mkcmp(t, OpEqual, "UniqueId", Guid(uuid.MustParse("1F3C2E5A-9B4D-4C6E-8A7F-0D1E2F3A4B5C")))
			},
			`<Eq><FieldRef Name="UniqueId"/><Value Type="Guid">1f3c2e5a-9b4d-4c6e-8a7f-0d1e2f3a4b5c</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Website", URL("https://example.com/a?b=c")) },
			`<Eq><FieldRef Name="Website"/><Value Type="URL">https://example.com/a?b=c</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Moderation", ModStat(0)) },
			`<Eq><FieldRef Name="Moderation"/><Value Type="ModStat">0</Value></Eq>`,
		},
		{
			func(t *testing.T) Node { return mkcmp(t, OpBeginsWith, "ContentTypeId", ContentTypeID("0x0101")) },
			`<BeginsWith><FieldRef Name="ContentTypeId"/><Value Type="ContentTypeId">0x0101</Value></BeginsWith>`,
		},
		{
			// reserved characters in literal text are escaped
			func(t *testing.T) Node { return mkcmp(t, OpEqual, "Title", Text("AT&T <report>")) },
			`<Eq><FieldRef Name="Title"/><Value Type="Text">AT&amp;T &lt;report&gt;</Value></Eq>`,
		},
		{
			func(t *testing.T) Node {
				return And(
					mkcmp(t, OpEqual, "Title", Text("Report")),
					mkcmp(t, OpIsNotNull, "Modified", nil),
				)
			},
			`<And><Eq><FieldRef Name="Title"/><Value Type="Text">Report</Value></Eq><IsNotNull><FieldRef Name="Modified"/></IsNotNull></And>`,
		},
		{
			func(t *testing.T) Node {
				return Or(
					mkcmp(t, OpLess, "ID", Counter(10)),
					And(
						mkcmp(t, OpEqual, "Status", Choice("Open")),
						mkcmp(t, OpEqual, "Author", CurrentUser()),
					),
				)
			},
			`<Or><Lt><FieldRef Name="ID"/><Value Type="Counter">10</Value></Lt><And><Eq><FieldRef Name="Status"/><Value Type="Choice">Open</Value></Eq><Eq><FieldRef Name="Author"/><UserID/></Eq></And></Or>`,
		},
	}

	for i := range testcases {
		in := testcases[i].in(t)
		want := testcases[i].want
		got := ToString(in)
		if got != want {
			t.Errorf("case %d: got  %s", i, got)
			t.Errorf("case %d: want %s", i, want)
		}
		// rendering must be byte-identical across calls
		if again := ToString(in); again != got {
			t.Errorf("case %d: non-deterministic render: %s != %s", i, again, got)
		}
		if err := Check(in); err != nil {
			t.Errorf("case %d: Check: %s", i, err)
		}
	}
}

func TestCompareOf(t *testing.T) {
	c, err := CompareOf(OpEqual, "Title", TextKind, "Report")
	if err != nil {
		t.Fatal(err)
	}
	want := `<Eq><FieldRef Name="Title"/><Value Type="Text">Report</Value></Eq>`
	if got := ToString(c); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	// payload errors surface through the value factory
	if _, err := CompareOf(OpEqual, "Title", TextKind, 3); err == nil {
		t.Error("mistyped payload: expected error")
	}
	if _, err := CompareOf(OpEqual, "Title", TextKind, nil); err == nil {
		t.Error("missing payload: expected error")
	}
}

func TestFieldNameEscaping(t *testing.T) {
	c := mkcmp(t, OpIsNull, `A"B`, nil)
	want := `<IsNull><FieldRef Name="A&quot;B"/></IsNull>`
	if got := ToString(c); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEquals(t *testing.T) {
	mod := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	a := mkcmp(t, OpEqual, "Title", Text("Report"))
	b := mkcmp(t, OpEqual, "Title", Text("Report"))
	if !Equal(a, b) {
		t.Error("identical comparisons not Equal")
	}
	if Equal(a, mkcmp(t, OpEqual, "Title", Text("Other"))) {
		t.Error("different payloads reported Equal")
	}
	if Equal(a, mkcmp(t, OpNotEqual, "Title", Text("Report"))) {
		t.Error("different ops reported Equal")
	}
	if !Equal(And(a, b), And(a, b)) {
		t.Error("identical connectives not Equal")
	}
	if Equal(And(a, b), Or(a, b)) {
		t.Error("And reported Equal to Or")
	}
	if !Date(mod).Equals(Date(mod)) {
		t.Error("identical dates not Equal")
	}
	if Date(mod).Equals(DateTime(mod)) {
		t.Error("date reported Equal to date-time")
	}
	// payloads of different dynamic types with the
	// same canonical text compare equal
	v1, err := NewValue(IntegerKind, int(3))
	if err != nil {
		t.Fatal(err)
	}
	if !v1.Equals(Integer(3)) {
		t.Error("int(3) not Equal to int64(3)")
	}
	if !Equal(nil, nil) || Equal(a, nil) || Equal(nil, a) {
		t.Error("nil handling broken")
	}
}
