package automaton

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"go.uber.org/zap"
)

// Equivalence is the result of the table-filling algorithm: the
// distinguishability matrix over ReverseTable indices and the group of every
// index. The sink's group is 0; real classes are numbered 1..Count().
type Equivalence struct {
	table  *ReverseTable
	marked [][]bool
	group  []int
	count  int
}

type statePair struct{ u, v int }

// Partition splits the reachable states of a into equivalence classes.
func Partition(a *Automaton, opts ...Option) *Equivalence {
	o := newOptions(opts)
	rt := a.ReverseTable()
	n := rt.Len()

	marked := make([][]bool, n)
	for i := range marked {
		marked[i] = make([]bool, n)
	}
	work := linkedlistqueue.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rt.final[i] != rt.final[j] {
				marked[i][j], marked[j][i] = true, true
				work.Enqueue(statePair{i, j})
			}
		}
	}

	for !work.Empty() {
		v, _ := work.Dequeue()
		p := v.(statePair)
		for ci := range rt.alphabet {
			for _, r := range rt.sources[ci][p.u] {
				for _, s := range rt.sources[ci][p.v] {
					if !marked[r][s] {
						marked[r][s], marked[s][r] = true, true
						work.Enqueue(statePair{r, s})
					}
				}
			}
		}
	}

	// the sink never merges with a real state
	for i := 1; i < n; i++ {
		marked[Sink][i], marked[i][Sink] = true, true
	}

	group := make([]int, n)
	for i := range group {
		group[i] = -1
		if !marked[Sink][i] {
			group[i] = 0
		}
	}
	count := 0
	for i := 1; i < n; i++ {
		if group[i] != -1 {
			continue
		}
		count++
		group[i] = count
		for j := i + 1; j < n; j++ {
			if group[j] == -1 && !marked[i][j] {
				group[j] = count
			}
		}
	}

	o.logger.Debug("states partitioned",
		zap.Int("states", n-1),
		zap.Int("classes", count))
	return &Equivalence{table: rt, marked: marked, group: group, count: count}
}

// Table is the reverse-transition table the partition was computed from.
func (e *Equivalence) Table() *ReverseTable { return e.table }

// Len counts partitioned indices, the sink included.
func (e *Equivalence) Len() int { return len(e.group) }

// Count is the number of classes of real states.
func (e *Equivalence) Count() int { return e.count }

// Merges is how many real states disappear when classes collapse; zero means
// the automaton is already minimal.
func (e *Equivalence) Merges() int { return e.Len() - 1 - e.count }

// Group returns the class of table index i.
func (e *Equivalence) Group(i int) int { return e.group[i] }

// GroupOf returns the class of a reachable state, or -1.
func (e *Equivalence) GroupOf(id StateID) int {
	i, ok := e.table.Index(id)
	if !ok {
		return -1
	}
	return e.group[i]
}

func (e *Equivalence) Distinguishable(i, j int) bool { return e.marked[i][j] }

// Minimize merges indistinguishable states of a. Class g of the partition
// becomes the state with signature {g}. Unreachable states of a are dropped.
func Minimize(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts)
	eq := Partition(a, opts...)
	rt := eq.table

	out := New()
	if eq.count == 0 {
		return out
	}
	ids := make([]StateID, eq.count+1)
	ids[0] = NoState
	for g := 1; g <= eq.count; g++ {
		ids[g] = out.AddState(uint(g))
	}

	for i := 1; i < rt.Len(); i++ {
		g := eq.group[i]
		if g == 0 {
			continue
		}
		src := a.states[rt.states[i]]
		dst := out.states[ids[g]]
		if src.final {
			dst.final = true
		}
		if src.id == a.start {
			out.start = dst.id
		}
		for ci, to := range src.trans {
			if to == NoState {
				continue
			}
			h := eq.group[rt.index[to]]
			if h == 0 {
				continue
			}
			dst.trans[ci] = ids[h]
		}
	}

	o.logger.Debug("dfa minimized",
		zap.Int("before", rt.Len()-1),
		zap.Int("after", eq.count))
	return out
}
