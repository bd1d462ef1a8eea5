package tensor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportFiles names the three artifacts one export produces.
type ExportFiles struct {
	Rows   string
	Cols   string
	Matrix string
}

// Export writes the flattened tensor in DISSECT sparse-matrix layout:
// one word per line in the rows file, one "<link>_<word2>" feature per
// line in the cols file, and one "word feature count" line per non-zero
// cell in the matrix file. File names embed a wall-clock timestamp so
// repeated exports never collide. Iteration order follows the underlying
// maps and is not sorted.
//
// A write failure aborts the export and is returned to the caller;
// already-flushed content is left in place, with no rollback.
func (t *Tensor) Export(dir string) (ExportFiles, error) {
	ts := time.Now().UnixMilli()
	files := ExportFiles{
		Rows:   filepath.Join(dir, fmt.Sprintf("row%d.rows", ts)),
		Cols:   filepath.Join(dir, fmt.Sprintf("col%d.cols", ts)),
		Matrix: filepath.Join(dir, fmt.Sprintf("tensor%d.sm", ts)),
	}

	rowF, err := os.Create(files.Rows)
	if err != nil {
		return files, err
	}
	defer rowF.Close()
	colF, err := os.Create(files.Cols)
	if err != nil {
		return files, err
	}
	defer colF.Close()
	matF, err := os.Create(files.Matrix)
	if err != nil {
		return files, err
	}
	defer matF.Close()

	rowW := bufio.NewWriter(rowF)
	colW := bufio.NewWriter(colF)
	matW := bufio.NewWriter(matF)

	features := make(map[string]struct{})
	for word, cells := range t.Matricize(nil) {
		if _, err := fmt.Fprintln(rowW, word); err != nil {
			return files, err
		}
		for feature, count := range cells {
			if _, err := fmt.Fprintf(matW, "%s %s %d\n", word, feature, count); err != nil {
				return files, err
			}
			features[feature] = struct{}{}
		}
	}
	for feature := range features {
		if _, err := fmt.Fprintln(colW, feature); err != nil {
			return files, err
		}
	}

	if err := rowW.Flush(); err != nil {
		return files, err
	}
	if err := colW.Flush(); err != nil {
		return files, err
	}
	if err := matW.Flush(); err != nil {
		return files, err
	}
	return files, nil
}
