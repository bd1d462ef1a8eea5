package store

import (
	"sort"
	"testing"
)

func TestCellsFromMatrix(t *testing.T) {
	cells := CellsFromMatrix(map[string]map[string]int64{
		"soldier": {"sbj_tr_read": 5, "with_talked": 2},
		"book":    {"obj_read": 7},
	})

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Word != cells[j].Word {
			return cells[i].Word < cells[j].Word
		}
		return cells[i].Feature < cells[j].Feature
	})

	want := []Cell{
		{Word: "book", Feature: "obj_read", Count: 7},
		{Word: "soldier", Feature: "sbj_tr_read", Count: 5},
		{Word: "soldier", Feature: "with_talked", Count: 2},
	}
	if len(cells) != len(want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestCellsFromMatrixEmpty(t *testing.T) {
	if cells := CellsFromMatrix(nil); len(cells) != 0 {
		t.Errorf("cells = %v, want none", cells)
	}
}
