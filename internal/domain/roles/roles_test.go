package roles

import (
	"reflect"
	"testing"
)

func TestMerge_AddsAbsentRole(t *testing.T) {
	got := Merge([]string{ATeam}, Member)
	want := []string{ATeam, Member}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestMerge_IsIdempotent(t *testing.T) {
	once := Merge([]string{ATeam}, Member)
	twice := Merge(once, Member)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second merge changed the set: %v vs %v", once, twice)
	}
}

func TestMerge_PreservesOrder(t *testing.T) {
	set := []string{Admin, ATeam, Member}
	got := Merge(set, ATeam)
	if !reflect.DeepEqual(got, set) {
		t.Fatalf("merging a present role reordered the set: %v", got)
	}
}

func TestMerge_EmptySet(t *testing.T) {
	got := Merge(nil, Member)
	if !reflect.DeepEqual(got, []string{Member}) {
		t.Fatalf("expected [MEMBER] got %v", got)
	}
}

func TestParseJoin_RoundTrip(t *testing.T) {
	in := "A-TEAM,MEMBER"
	if got := Join(Parse(in)); got != in {
		t.Fatalf("round trip changed value: %q", got)
	}
}

func TestParse_DropsEmptyEntries(t *testing.T) {
	got := Parse(",MEMBER,, A-TEAM ,")
	want := []string{Member, ATeam}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse(""); got != nil {
		t.Fatalf("expected nil got %v", got)
	}
}

func TestMergeSerialized(t *testing.T) {
	cases := []struct {
		current string
		role    string
		want    string
	}{
		{"", Member, "MEMBER"},
		{"A-TEAM", Member, "A-TEAM,MEMBER"},
		{"A-TEAM,MEMBER", Member, "A-TEAM,MEMBER"},
		{"MEMBER", Member, "MEMBER"},
	}
	for _, tc := range cases {
		if got := MergeSerialized(tc.current, tc.role); got != tc.want {
			t.Fatalf("MergeSerialized(%q, %q) = %q, want %q", tc.current, tc.role, got, tc.want)
		}
	}
}

func TestHas(t *testing.T) {
	set := Parse("A-TEAM,MEMBER")
	if !Has(set, ATeam) || !Has(set, Member) {
		t.Fatalf("expected both roles present in %v", set)
	}
	if Has(set, Admin) {
		t.Fatalf("ADMIN should be absent from %v", set)
	}
}
