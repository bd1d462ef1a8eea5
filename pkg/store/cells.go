package store

// CellsFromMatrix flattens a word -> feature -> count matrix into the
// cell list SaveCells expects.
func CellsFromMatrix(m map[string]map[string]int64) []Cell {
	var cells []Cell
	for word, features := range m {
		for feature, count := range features {
			cells = append(cells, Cell{Word: word, Feature: feature, Count: count})
		}
	}
	return cells
}
