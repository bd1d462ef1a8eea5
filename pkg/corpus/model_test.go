package corpus

import (
	"errors"
	"strings"
	"testing"
)

const (
	transitiveLine   = "read\tsoldier/NN/nsubj/2 read/VBP/root/0 book/NN/dobj/2\t12\t2003,7\t2004,5"
	intransitiveLine = "sing\tteacher/NN/nsubj/2 sing/VBG/root/0\t4\t1999,4"
)

func TestProcessLineAccumulates(t *testing.T) {
	m, err := NewModel()
	if err != nil {
		t.Fatalf("NewModel(): %v", err)
	}

	m.ProcessLine(transitiveLine)
	m.ProcessLine(transitiveLine)

	counts := m.Tensor().Matricize(nil)
	if got := counts["soldier"]["sbj_tr_read"]; got != 24 {
		t.Errorf("soldier sbj_tr read = %d, want 24", got)
	}
	if got := counts["book"]["obj_read"]; got != 24 {
		t.Errorf("book obj read = %d, want 24", got)
	}

	stats := m.Stats()
	if stats.Lines != 2 || stats.Skipped != 0 || stats.Paths != 4 {
		t.Errorf("stats = %+v, want 2 lines, 0 skipped, 4 paths", stats)
	}
}

func TestProcessLineSkips(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"too few fields", "read\tsoldier/NN/nsubj/1"},
		{"count not a number", "read\tteacher/NN/nsubj/2 sing/VBG/root/0\tmany"},
		{"count zero", "read\tteacher/NN/nsubj/2 sing/VBG/root/0\t0"},
		{"count negative", "read\tteacher/NN/nsubj/2 sing/VBG/root/0\t-3"},
		{"fragment malformed", "read\tteacher/NN/nsubj sing/VBG/root/0\t5"},
		{"fragment unknown tag", "read\tteacher/ZZ/nsubj/2 sing/VBG/root/0\t5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel()
			if err != nil {
				t.Fatalf("NewModel(): %v", err)
			}
			m.ProcessLine(tt.line)
			stats := m.Stats()
			if stats.Lines != 1 || stats.Skipped != 1 || stats.Paths != 0 {
				t.Errorf("stats = %+v, want 1 line, 1 skipped, 0 paths", stats)
			}
			if n := m.Tensor().Words(); n != 0 {
				t.Errorf("tensor interned %d words from a skipped line", n)
			}
		})
	}
}

func TestProcessReader(t *testing.T) {
	m, err := NewModel()
	if err != nil {
		t.Fatalf("NewModel(): %v", err)
	}

	stream := strings.Join([]string{
		transitiveLine,
		"bogus line",
		intransitiveLine,
	}, "\n")
	if err := m.ProcessReader(strings.NewReader(stream)); err != nil {
		t.Fatalf("ProcessReader(): %v", err)
	}

	stats := m.Stats()
	if stats.Lines != 3 || stats.Skipped != 1 || stats.Paths != 3 {
		t.Errorf("stats = %+v, want 3 lines, 1 skipped, 3 paths", stats)
	}
	counts := m.Tensor().Matricize(nil)
	if got := counts["teacher"]["sbj_intr_sing"]; got != 4 {
		t.Errorf("teacher sbj_intr sing = %d, want 4", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}

func TestProcessReaderPropagatesStreamError(t *testing.T) {
	m, err := NewModel()
	if err != nil {
		t.Fatalf("NewModel(): %v", err)
	}
	if err := m.ProcessReader(failingReader{}); err == nil {
		t.Error("ProcessReader() with failing stream succeeded, want error")
	}
}

func TestExportRoundTrip(t *testing.T) {
	m, err := NewModel()
	if err != nil {
		t.Fatalf("NewModel(): %v", err)
	}
	m.ProcessLine(intransitiveLine)

	files, err := m.Export(t.TempDir())
	if err != nil {
		t.Fatalf("Export(): %v", err)
	}
	for _, path := range []string{files.Rows, files.Cols, files.Matrix} {
		if path == "" {
			t.Error("export returned an empty file path")
		}
	}
}
