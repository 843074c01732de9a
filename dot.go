package stack

import (
	"fmt"
	"io"
	"strings"
)

// ToDOT writes the storage graph in graphviz format: the global order chain,
// one chain per key, and a dashed edge from each order node to the element
// it stands for. Meant for debugging the node graph by eye.
func (s *Stack[K, V]) ToDOT(w io.Writer) error {
	d := s.load()
	if _, err := io.WriteString(w, "digraph stack {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  rankdir=LR;\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  node [shape=box, style=filled, fillcolor=lightblue];\n"); err != nil {
		return err
	}

	ids := make(map[*node[*entry[K, V]]]int)
	i := 0
	for n := d.order.front(); n != nil; n = d.order.nextOf(n) {
		ids[n] = i
		if _, err := fmt.Fprintf(w, "  \"order%d\" [label=\"#%d\", fillcolor=lightyellow];\n", i, i); err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintf(w, "  \"order%d\" -> \"order%d\";\n", i-1, i); err != nil {
				return err
			}
		}
		i++
	}

	var iterErr error
	d.entries.Iter(func(key K, e *entry[K, V]) (stop bool) {
		label := strings.ReplaceAll(fmt.Sprintf("%v", key), `"`, `\"`)
		j := 0
		var prevID string
		for n := e.values.front(); n != nil; n = e.values.nextOf(n) {
			id := fmt.Sprintf("%s#%d", label, j)
			valueLabel := strings.ReplaceAll(fmt.Sprintf("%v = %v", key, n.val.value), `"`, `\"`)
			if _, err := fmt.Fprintf(w, "  \"%s\" [label=\"%s\"];\n", id, valueLabel); err != nil {
				iterErr = err
				return true
			}
			if j > 0 {
				if _, err := fmt.Fprintf(w, "  \"%s\" -> \"%s\";\n", prevID, id); err != nil {
					iterErr = err
					return true
				}
			}
			if _, err := fmt.Fprintf(w, "  \"order%d\" -> \"%s\" [style=dashed];\n", ids[n.val.at], id); err != nil {
				iterErr = err
				return true
			}
			prevID = id
			j++
		}
		return false
	})
	if iterErr != nil {
		return iterErr
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return err
	}
	return nil
}
