package tensor

import (
	"reflect"
	"testing"
)

func TestAddAccumulates(t *testing.T) {
	tn := New()
	tn.Add("soldier", "sbj_tr", "read", 5)
	tn.Add("soldier", "sbj_tr", "read", 3)

	m := tn.Matricize(nil)
	if got := m["soldier"]["sbj_tr_read"]; got != 8 {
		t.Errorf("count = %d, want 8", got)
	}
}

func TestAddInternsInFirstSeenOrder(t *testing.T) {
	tn := New()
	tn.Add("soldier", "sbj_tr", "read", 1)
	tn.Add("book", "obj", "read", 1)
	tn.Add("soldier", "obj", "book", 1)

	// Words are shared across both slots; re-adding known strings must
	// not grow the tables.
	if got := tn.Words(); got != 3 {
		t.Errorf("Words() = %d, want 3", got)
	}
	// Every link reserves an id for its reverse alongside the forward one.
	if got := tn.Links(); got != 4 {
		t.Errorf("Links() = %d, want 4", got)
	}

	tn.Add("soldier", "sbj_tr", "read", 1)
	if got := tn.Words(); got != 3 {
		t.Errorf("Words() after repeat = %d, want 3", got)
	}
	if got := tn.Links(); got != 4 {
		t.Errorf("Links() after repeat = %d, want 4", got)
	}
}

func TestMatricizeFixedShape(t *testing.T) {
	tn := New()
	tn.Add("soldier", "sbj_tr", "read", 5)
	tn.Add("soldier", "with", "talked", 2)
	tn.Add("book", "obj", "read", 7)

	// The row axis is always the first word; the argument only exists for
	// interface symmetry with other matricizations.
	for _, rows := range [][]int{nil, {0}, {1, 2}} {
		got := tn.Matricize(rows)
		want := map[string]map[string]int64{
			"soldier": {"sbj_tr_read": 5, "with_talked": 2},
			"book":    {"obj_read": 7},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Matricize(%v) = %v, want %v", rows, got, want)
		}
	}
}

func TestMatricizeEmpty(t *testing.T) {
	if got := New().Matricize(nil); len(got) != 0 {
		t.Errorf("Matricize() on empty tensor = %v, want empty", got)
	}
}
