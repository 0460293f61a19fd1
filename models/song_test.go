package models

import "testing"

func TestRelationCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		relation string
		want     string
	}{
		{"OP2", RelationOpening},
		{"op1", RelationOpening},
		{"ED1", RelationEnding},
		{"ed10", RelationEnding},
		{"OST", RelationOST},
		{"Film", RelationOST},
		{"", RelationOST},
	}
	for _, tc := range cases {
		got := Song{Relation: tc.relation}.RelationCategory()
		if got != tc.want {
			t.Fatalf("RelationCategory(%q) = %q, want %q", tc.relation, got, tc.want)
		}
	}
}

func TestRequestResolved(t *testing.T) {
	t.Parallel()

	if (SongRequest{Status: StatusPending}).Resolved() {
		t.Fatal("pending request reported resolved")
	}
	if !(SongRequest{Status: StatusAccepted}).Resolved() {
		t.Fatal("accepted request reported unresolved")
	}
	if !(AnimeRequest{Status: StatusRejected}).Resolved() {
		t.Fatal("rejected request reported unresolved")
	}
}
