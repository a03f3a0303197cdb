package automaton

import (
	"bufio"
	"fmt"
	"io"

	"directdfa/internal/syntax"
)

// Edge is a labelled transition of a Snapshot.
type Edge struct {
	From StateID
	Char byte
	To   StateID
}

// Snapshot is a read-only view of the reachable part of an automaton, meant
// for renderers.
type Snapshot struct {
	Initial StateID
	States  []StateID
	Final   []StateID
	Edges   []Edge
	Labels  map[StateID]string
}

func (a *Automaton) Snapshot() Snapshot {
	snap := Snapshot{Initial: a.start, Labels: make(map[StateID]string)}
	for _, id := range a.States() {
		s := a.states[id]
		snap.States = append(snap.States, id)
		snap.Labels[id] = s.key
		if s.final {
			snap.Final = append(snap.Final, id)
		}
		for i, to := range s.trans {
			if to != NoState {
				snap.Edges = append(snap.Edges, Edge{From: id, Char: syntax.MinChar + byte(i), To: to})
			}
		}
	}
	return snap
}

// ExportDOT writes a Graphviz rendering of an *Automaton or of an annotated
// *syntax.Tree to w.
func ExportDOT(w io.Writer, g interface{}) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")

	switch t := g.(type) {
	case *Automaton:
		fmt.Fprintln(bw, "    rankdir=LR;")
		snap := t.Snapshot()
		final := make(map[StateID]bool, len(snap.Final))
		for _, id := range snap.Final {
			final[id] = true
		}
		for _, id := range snap.States {
			shape := "circle"
			if final[id] {
				shape = "doublecircle"
			}
			fmt.Fprintf(bw, "    q%d [shape=%s, label=%q];\n", id, shape, snap.Labels[id])
		}
		for _, e := range snap.Edges {
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"%c\"];\n", e.From, e.To, e.Char)
		}
		if len(snap.States) > 0 {
			fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", snap.Initial)
		}

	case *syntax.Tree:
		fmt.Fprintln(bw, "    node [shape=box];")
		id := 0
		var walk func(*syntax.Node) int
		walk = func(n *syntax.Node) int {
			me := id
			id++
			label := n.Kind().String()
			if n.Kind() == syntax.KindLeaf {
				label = fmt.Sprintf("%c  %d", n.Char(), n.Pos())
			}
			fmt.Fprintf(bw, "    n%d [label=\"%s\\nnullable=%v\\nfirst=%v\\nlast=%v\"];\n",
				me, label, n.Nullable(), n.FirstPos(), n.LastPos())
			for _, c := range []*syntax.Node{n.Left(), n.Child(), n.Right()} {
				if c != nil {
					fmt.Fprintf(bw, "    n%d -> n%d;\n", me, walk(c))
				}
			}
			return me
		}
		walk(t.Root())

	default:
		fmt.Fprintln(bw, "    /* unknown graph type */")
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
