package tensor

import (
	"os"
	"sort"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	sort.Strings(lines)
	return lines
}

func TestExportWritesSparseMatrix(t *testing.T) {
	tn := New()
	tn.Add("soldier", "sbj_tr", "read", 5)
	tn.Add("soldier", "with", "talked", 2)
	tn.Add("book", "obj", "read", 7)

	dir := t.TempDir()
	files, err := tn.Export(dir)
	if err != nil {
		t.Fatalf("Export(): %v", err)
	}

	if !strings.HasSuffix(files.Rows, ".rows") {
		t.Errorf("rows file = %q, want .rows suffix", files.Rows)
	}
	if !strings.HasSuffix(files.Cols, ".cols") {
		t.Errorf("cols file = %q, want .cols suffix", files.Cols)
	}
	if !strings.HasSuffix(files.Matrix, ".sm") {
		t.Errorf("matrix file = %q, want .sm suffix", files.Matrix)
	}

	rows := readLines(t, files.Rows)
	wantRows := []string{"book", "soldier"}
	if len(rows) != 2 || rows[0] != wantRows[0] || rows[1] != wantRows[1] {
		t.Errorf("rows = %v, want %v", rows, wantRows)
	}

	cols := readLines(t, files.Cols)
	wantCols := []string{"obj_read", "sbj_tr_read", "with_talked"}
	if len(cols) != 3 {
		t.Fatalf("cols = %v, want %v", cols, wantCols)
	}
	for i := range wantCols {
		if cols[i] != wantCols[i] {
			t.Errorf("cols[%d] = %q, want %q", i, cols[i], wantCols[i])
		}
	}

	cells := readLines(t, files.Matrix)
	wantCells := []string{
		"book obj_read 7",
		"soldier sbj_tr_read 5",
		"soldier with_talked 2",
	}
	if len(cells) != 3 {
		t.Fatalf("matrix = %v, want %v", cells, wantCells)
	}
	for i := range wantCells {
		if cells[i] != wantCells[i] {
			t.Errorf("matrix[%d] = %q, want %q", i, cells[i], wantCells[i])
		}
	}
}

func TestExportEmptyTensor(t *testing.T) {
	dir := t.TempDir()
	files, err := New().Export(dir)
	if err != nil {
		t.Fatalf("Export(): %v", err)
	}
	for _, path := range []string{files.Rows, files.Cols, files.Matrix} {
		if lines := readLines(t, path); len(lines) != 0 {
			t.Errorf("%q = %v, want empty", path, lines)
		}
	}
}

func TestExportMissingDir(t *testing.T) {
	if _, err := New().Export(t.TempDir() + "/nope"); err == nil {
		t.Error("Export() into missing directory succeeded, want error")
	}
}
