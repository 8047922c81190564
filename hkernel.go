// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MakeNode returns the canonical node for the function "if variable index then
// high else low". Parameter index must be a variable (not a reserved constant
// index) that precedes the variables of high and low in the order, unless high
// and low are equal, in which case the result is high. We return Invalid and
// set the error status otherwise.
func (b *Manager) MakeNode(index int, high, low Node) Node {
	if err := b.checkptr(high); err != nil {
		return b.seterror(err, "wrong high branch in call to MakeNode")
	}
	if err := b.checkptr(low); err != nil {
		return b.seterror(err, "wrong low branch in call to MakeNode")
	}
	if index < Firstvar {
		return b.seterror(ErrReservedIndex, "index %d in call to MakeNode", index)
	}
	if index > MaxVar {
		return b.seterror(ErrOrder, "index %d larger than %d in call to MakeNode", index, MaxVar)
	}
	// a redundant test is removed before looking at the order
	if high == low {
		b.begin()
		return b.makenode(int32(index), high, low)
	}
	if int32(index) >= b.level(high) || int32(index) >= b.level(low) {
		return b.seterror(ErrOrder, "index %d does not precede its children (%d, %d) in call to MakeNode",
			index, b.level(high), b.level(low))
	}
	b.begin()
	return b.makenode(int32(index), high, low)
}

// makenode is the only place where nodes are created. The lookup in the unique
// table and the insertion of a new node must not be interleaved with another
// construction, otherwise two nodes could denote the same function.
func (b *Manager) makenode(index int32, high, low Node) Node {
	// check whether children are equal, in which case we can skip the node
	if high == low {
		atomic.AddUint64(&b.counters.reduced, 1)
		return high
	}
	if high < 0 || low < 0 {
		return Invalid
	}
	if _DEBUG {
		if index < Firstvar || index >= b.level(high) || index >= b.level(low) {
			b.log.Panicf("makenode(%d, %d, %d) breaks the variable order", index, high, low)
		}
	}
	atomic.AddUint64(&b.counters.uniqueAccess, 1)
	key := nodekey{index: index, high: high, low: low}
	// otherwise try to find an existing node using the unique table
	if res, ok := b.unique[key]; ok {
		atomic.AddUint64(&b.counters.uniqueHit, 1)
		return res
	}
	atomic.AddUint64(&b.counters.uniqueMiss, 1)
	// If no existing node, we build one, unless we reached the maximal size of
	// the arena.
	if b.maxnodesize > 0 && len(b.nodes) >= b.maxnodesize {
		return b.seterror(ErrMemory, "arena at max capacity (%d nodes)", b.maxnodesize)
	}
	res := Node(len(b.nodes))
	oldcap := cap(b.nodes)
	b.nodes = append(b.nodes, node{index: index, high: high, low: low})
	b.unique[key] = res
	atomic.AddUint64(&b.counters.produced, 1)
	if int64(index) > b.counters.maxvar {
		atomic.StoreInt64(&b.counters.maxvar, int64(index))
	}
	if cap(b.nodes) != oldcap {
		b.noderesize(oldcap)
	}
	return res
}

// noderesize is called when the arena has been reallocated. We take the
// opportunity to grow the caches when a cache ratio is set.
func (b *Manager) noderesize(oldcap int) {
	grown := b.itecache.cacheresize(cap(b.nodes))
	b.restrictcache.cacheresize(cap(b.nodes))
	b.log.WithFields(logrus.Fields{
		"from":      oldcap,
		"to":        cap(b.nodes),
		"cacheSize": len(b.itecache.table),
		"resized":   grown,
	}).Debug("arena resized")
}

// nodeError wraps the error of an invalid operand of operation op.
func (b *Manager) nodeError(n Node, op string, operand string) Node {
	return b.seterror(errors.Wrapf(b.checkptr(n), "%s operand", operand), "in call to %s", op)
}
