// Package bench times insertion and lookup on the two search trees for sorted
// and shuffled input.
package bench

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/e11jah/searchtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treebench'
func tracer() tracing.Trace {
	return tracing.Select("treebench")
}

// Case identifies one tree kind fed with one input order.
type Case int

const (
	BSTSorted Case = iota
	BSTShuffled
	AVLSorted
	AVLShuffled
)

// Cases lists all cases in report order.
var Cases = []Case{BSTSorted, BSTShuffled, AVLSorted, AVLShuffled}

func (c Case) String() string {
	return []string{"BST (sorted)", "BST (shuffled)", "AVL (sorted)", "AVL (shuffled)"}[c]
}

type Timing struct {
	Insert time.Duration
	Search time.Duration
	Size   int // distinct keys held by the tree after insertion
}

type Result struct {
	Rows    int
	Timings [4]Timing // indexed by Case
}

// Run builds a sorted and a shuffled copy of keys, inserts each into a fresh
// OrderedTree and BalancedTree and then looks up every key of the original
// list in every tree. The shuffle is deterministic for a given seed.
func Run(keys []string, seed uint64) Result {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	shuffled := slices.Clone(keys)
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	result := Result{Rows: len(keys)}
	for _, c := range Cases {
		var tree searchtree.Tree[string]
		input := shuffled
		switch c {
		case BSTSorted, BSTShuffled:
			tree = searchtree.NewOrdered[string]()
		default:
			tree = searchtree.NewBalanced[string]()
		}
		if c == BSTSorted || c == AVLSorted {
			input = sorted
		}
		result.Timings[c] = measure(tree, input, keys)
		tracer().Debugf("%s: %d keys, insert %v, search %v",
			c, result.Timings[c].Size, result.Timings[c].Insert, result.Timings[c].Search)
	}
	return result
}

func measure(tree searchtree.Tree[string], input, queries []string) Timing {
	start := time.Now()
	for _, k := range input {
		tree.Insert(k)
	}
	insert := time.Since(start)

	found := 0
	start = time.Now()
	for _, k := range queries {
		if tree.Contains(k) {
			found++
		}
	}
	search := time.Since(start)

	if found != len(queries) {
		tracer().Errorf("only %d of %d keys found after insertion", found, len(queries))
	}
	return Timing{Insert: insert, Search: search, Size: tree.Size()}
}
