// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

// Node is a reference to an element of a BDD. It is a handle into the arena of
// the Manager that created it and is only meaningful for this Manager.
type Node int

// Invalid is the Node returned by operations that fail. It is never a valid
// handle.
const Invalid Node = -1

const (
	bddzero Node = 0
	bddone  Node = 1
)

// node is the record stored in the arena. Records are immutable once created.
type node struct {
	index int32 // Variable index, or 0/1 for the terminals
	high  Node  // Reference to the true branch (Invalid for terminals)
	low   Node  // Reference to the false branch (Invalid for terminals)
}

// nodekey is the key of the unicity table.
type nodekey struct {
	index int32
	high  Node
	low   Node
}

func (b *Manager) isterminal(n Node) bool {
	return n == bddzero || n == bddone
}

// level returns the position of n in the variable order. Terminals are always
// after every variable.
func (b *Manager) level(n Node) int32 {
	if n < 2 {
		return _TERMLEVEL
	}
	return b.nodes[n].index
}

func (b *Manager) high(n Node) Node {
	return b.nodes[n].high
}

func (b *Manager) low(n Node) Node {
	return b.nodes[n].low
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the splitting level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}
