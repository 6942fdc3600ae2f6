package archived

import "os"
import "fmt"
import "bufio"

// Graph exports the commit arena to a graphviz dot file, useful to understand
// how far compression has progressed. Commits made unreachable by compression are included.
func (a *Archive[V]) Graph(fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	a.graph(w)
	return w.Flush()
}

func (a *Archive[V]) graph(w *bufio.Writer) {
	fmt.Fprintf(w, "digraph archived_graph { \n")
	fmt.Fprintf(w, "node [ fontsize=12 style=filled ]\n")

	for i := range a.commits {
		c := &a.commits[i]
		switch {
		case c.isHead():
			fmt.Fprintf(w, "C%d  [ fillcolor=%s label = \"C%d head\"  ];\n", i, "red", i)
		case i == a.anchor:
			fmt.Fprintf(w, "C%d  [ fillcolor=%s label = \"C%d anchor %v\"  ];\n", i, "yellow", i, c.delta)
		default:
			fmt.Fprintf(w, "C%d  [ fillcolor=%s label = \"C%d %v\"  ];\n", i, "green", i, c.delta)
		}
	}
	for i := range a.commits {
		if c := &a.commits[i]; !c.isHead() {
			fmt.Fprintf(w, "C%d -> C%d ;\n", i, c.next)
		}
	}
	fmt.Fprintf(w, "}\n")
}
