package tensor

// idTable interns strings to dense ids in first-seen order and supports
// reverse lookup for flattening.
type idTable struct {
	ids     map[string]int
	inverse []string
}

func newIDTable() *idTable {
	return &idTable{ids: make(map[string]int)}
}

func (t *idTable) intern(s string) int {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := len(t.inverse)
	t.ids[s] = id
	t.inverse = append(t.inverse, s)
	return id
}

func (t *idTable) lookup(id int) string {
	return t.inverse[id]
}

func (t *idTable) size() int {
	return len(t.inverse)
}

// Tensor is the sparse three-dimensional co-occurrence count structure
// keyed by (word1, link, word2). Words and links are interned into
// separate id tables; every link additionally reserves a "<link>_rev" id
// that no cell ever populates, keeping the id space ready for reversed
// links without renumbering.
//
// A Tensor has exactly one writer for its lifetime and is only read at
// the end of a run, so it carries no locking.
type Tensor struct {
	words  *idTable
	links  *idTable
	counts map[int]map[int]map[int]int64
}

// New creates an empty tensor.
func New() *Tensor {
	return &Tensor{
		words:  newIDTable(),
		links:  newIDTable(),
		counts: make(map[int]map[int]map[int]int64),
	}
}

// Add accumulates amount onto the (word1, link, word2) cell, interning
// any strings seen for the first time and creating intermediate sparse
// levels on demand. Repeated adds for the same key sum; there is no
// overwrite, decrement, or delete.
func (t *Tensor) Add(word1, link, word2 string, amount int64) {
	w1 := t.words.intern(word1)
	w2 := t.words.intern(word2)
	l := t.links.intern(link)
	t.links.intern(link + "_rev")

	middle, ok := t.counts[w1]
	if !ok {
		middle = make(map[int]map[int]int64)
		t.counts[w1] = middle
	}
	inner, ok := middle[l]
	if !ok {
		inner = make(map[int]int64)
		middle[l] = inner
	}
	inner[w2] += amount
}

// Words returns the number of distinct interned words.
func (t *Tensor) Words() int {
	return t.words.size()
}

// Links returns the number of interned link ids, counting the reserved
// "_rev" ids.
func (t *Tensor) Links() int {
	return t.links.size()
}

// Matricize flattens the tensor to a 2D sparse matrix keyed by the word1
// string and a "<link>_<word2>" column string.
//
// The rows argument nominally selects which dimensions become matrix
// rows; the only supported flattening is word1 × (link, word2) and the
// argument is ignored.
func (t *Tensor) Matricize(rows []int) map[string]map[string]int64 {
	_ = rows
	matrix := make(map[string]map[string]int64, len(t.counts))
	for w1, middle := range t.counts {
		row := t.words.lookup(w1)
		cells, ok := matrix[row]
		if !ok {
			cells = make(map[string]int64)
			matrix[row] = cells
		}
		for l, inner := range middle {
			link := t.links.lookup(l)
			for w2, count := range inner {
				cells[link+"_"+t.words.lookup(w2)] = count
			}
		}
	}
	return matrix
}
