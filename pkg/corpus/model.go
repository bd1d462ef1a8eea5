// Package corpus drives co-occurrence extraction over a syntactic
// n-gram corpus: each line's tree fragment is built, matched against the
// template catalog, and folded into one run-wide co-occurrence tensor.
package corpus

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"depdm/pkg/deptree"
	"depdm/pkg/extract"
	"depdm/pkg/pattern"
	"depdm/pkg/tensor"
)

// Stats counts what one run saw. Skipped covers every locally recovered
// condition: malformed records, unparsable fragments, and non-positive
// total counts.
type Stats struct {
	Lines   int64
	Skipped int64
	Paths   int64
}

// Model owns the state of one extraction run: the tensor being
// accumulated, the template catalog, and the matcher. One fragment is
// fully processed before the next is read; nothing here is safe for
// concurrent use.
type Model struct {
	tensor    *tensor.Tensor
	extractor *extract.Extractor
	stats     Stats
}

// NewModel builds a run over the standard catalog. It fails only when
// the catalog itself is structurally invalid, which is a configuration
// error, not an input condition.
func NewModel() (*Model, error) {
	catalog := pattern.Catalog()
	if err := pattern.ValidateAll(catalog); err != nil {
		return nil, err
	}
	return &Model{
		tensor:    tensor.New(),
		extractor: extract.New(catalog),
	}, nil
}

// ProcessLine folds one corpus record into the tensor. A record is
// tab-separated: head word, the space-separated fragment, a total count,
// then per-year counts. Records that do not decompose, carry a
// non-positive count, or whose fragment fails validation are skipped
// silently; nothing recoverable escapes this method.
func (m *Model) ProcessLine(line string) {
	m.stats.Lines++

	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		m.stats.Skipped++
		return
	}
	total, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || total <= 0 {
		m.stats.Skipped++
		return
	}
	graph := deptree.Parse(fields[1])
	if graph == nil {
		m.stats.Skipped++
		return
	}

	paths := m.extractor.Extract(graph)
	for _, p := range paths {
		m.tensor.Add(p.First(), p.PatternName, p.Second(), total)
	}
	m.stats.Paths += int64(len(paths))
}

// ProcessReader consumes a corpus stream line by line. Only a stream
// read failure is returned; every per-line condition is handled inside
// ProcessLine.
func (m *Model) ProcessReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		m.ProcessLine(scanner.Text())
	}
	return scanner.Err()
}

// Tensor exposes the accumulated counts.
func (m *Model) Tensor() *tensor.Tensor {
	return m.tensor
}

// Stats returns the run counters so far.
func (m *Model) Stats() Stats {
	return m.stats
}

// Export writes the run's tensor in DISSECT layout under dir.
func (m *Model) Export(dir string) (tensor.ExportFiles, error) {
	return m.tensor.Export(dir)
}
