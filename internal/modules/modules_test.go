package modules

import "testing"

// group builds a MODULE LIST group: [name_key, name, ver_key, ver, ...].
func group(name, version interface{}) []interface{} {
	return []interface{}{"name", name, "ver", version}
}

func TestFindStringFields(t *testing.T) {
	reply := []interface{}{
		group("bf", "2.4.5"), "x",
		group("search", "2.4.1"), "x",
	}

	rec, ok := Find(reply, "search")
	if !ok {
		t.Fatal("expected search module to be found")
	}
	if rec.Name != "search" || rec.Version != "2.4.1" {
		t.Errorf("got %+v, want {search 2.4.1}", rec)
	}
}

func TestFindByteFields(t *testing.T) {
	reply := []interface{}{
		group([]byte("search"), []byte("2.4.1")), "x",
	}

	rec, ok := Find(reply, "search")
	if !ok {
		t.Fatal("expected search module to be found with byte fields")
	}
	if rec.Version != "2.4.1" {
		t.Errorf("version = %q, want %q", rec.Version, "2.4.1")
	}
}

func TestFindIntegerVersion(t *testing.T) {
	reply := []interface{}{
		group("search", int64(20401)), "x",
	}

	rec, ok := Find(reply, "search")
	if !ok {
		t.Fatal("expected search module to be found")
	}
	if rec.Version != "20401" {
		t.Errorf("version = %q, want %q", rec.Version, "20401")
	}
}

func TestFindAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"nil reply", nil},
		{"not a list", "OK"},
		{"empty list", []interface{}{}},
		{"no matching group", []interface{}{group("bf", "1.0.0"), "x"}},
		{"case mismatch", []interface{}{group("Search", "2.4.1"), "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Find(tt.raw, "search"); ok {
				t.Error("expected module to be absent")
			}
		})
	}
}

func TestFindOddLengthReply(t *testing.T) {
	// Trailing unpaired element must never be inspected.
	reply := []interface{}{
		group("search", "2.4.1"), "x",
		group("bf", "1.0.0"),
	}

	rec, ok := Find(reply, "search")
	if !ok {
		t.Fatal("expected earlier match despite unpaired trailing element")
	}
	if rec.Version != "2.4.1" {
		t.Errorf("version = %q, want %q", rec.Version, "2.4.1")
	}

	// A match sitting in the unpaired tail position is not visible.
	if _, ok := Find(reply, "bf"); ok {
		t.Error("trailing unpaired group should not be inspected")
	}
}

func TestFindSkipsMalformedGroups(t *testing.T) {
	reply := []interface{}{
		"not a group", "x",
		[]interface{}{"name", "short"}, "x",
		group("search", "2.4.1"), "x",
	}

	rec, ok := Find(reply, "search")
	if !ok {
		t.Fatal("malformed group suppressed a later valid module")
	}
	if rec.Version != "2.4.1" {
		t.Errorf("version = %q, want %q", rec.Version, "2.4.1")
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	reply := []interface{}{
		group("search", "1.0.0"), "x",
		group("search", "2.0.0"), "x",
	}

	rec, _ := Find(reply, "search")
	if rec.Version != "1.0.0" {
		t.Errorf("version = %q, want first match %q", rec.Version, "1.0.0")
	}
}

func TestList(t *testing.T) {
	reply := []interface{}{
		group([]byte("bf"), int64(20405)), "x",
		"junk", "x",
		group("search", "2.4.1"), "x",
	}

	records := List(reply)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Name != "bf" || records[0].Version != "20405" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Name != "search" || records[1].Version != "2.4.1" {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestListNotASequence(t *testing.T) {
	if records := List(int64(7)); records != nil {
		t.Errorf("expected nil for non-list reply, got %v", records)
	}
}
