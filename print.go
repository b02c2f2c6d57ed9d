package searchtree

import (
	"fmt"
	"io"
)

// Print writes the keys of the tree in ascending order, one per line.
func (t *BalancedTree[K]) Print(w io.Writer) error {
	var err error
	t.Ascend(func(key K) bool {
		_, err = fmt.Fprintln(w, key)
		return err == nil
	})
	return err
}

// Print writes the keys of the tree in ascending order, one per line.
func (t *OrderedTree[K]) Print(w io.Writer) error {
	for key := range t.All() {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return err
		}
	}
	return nil
}
