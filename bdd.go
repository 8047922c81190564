// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Manager owns the nodes of a collection of BDDs sharing the same variable
// order. A Manager is not safe for concurrent use: all the operations that may
// create nodes must be called from a single goroutine.
type Manager struct {
	nodes         []node           // Arena of all the nodes. Constants are always kept at index 0 and 1
	unique        map[nodekey]Node // Unicity table, used to associate each triplet to a single node
	callid        uint64           // Identifier of the current top-level operation, used to tag cache entries
	itecache      cache            // Cache for ITE results
	restrictcache cache            // Cache for Restrict results
	counters                       // Information about the Manager
	log           logrus.FieldLogger
	maxnodesize   int
	error         // Error status to help chain operations
}

// New returns a Manager with the two constants already allocated. Parameter
// varnum is an estimate of the number of variables that will be used; it is
// only used to size the initial arena and does not limit the indices passed to
// AddNthIndex. You can also pass optional configuration options, such as
// Nodesize or Cachesize, to tune the initial sizes of the tables.
//
//	bdd, err := itebdd.New(10, itebdd.Nodesize(10000), itebdd.Cachesize(3000))
func New(varnum int, options ...func(*configs)) (*Manager, error) {
	if varnum < 0 || varnum > MaxVar {
		return nil, errors.Wrapf(ErrConfig, "bad number of variables (%d)", varnum)
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	if config.maxnodesize < 0 || (config.maxnodesize > 0 && config.maxnodesize < 2) {
		return nil, errors.Wrapf(ErrConfig, "max node size (%d) too small for the constants", config.maxnodesize)
	}
	if config.cachesize <= 0 {
		return nil, errors.Wrapf(ErrConfig, "bad cache size (%d)", config.cachesize)
	}
	if config.cacheratio < 0 {
		return nil, errors.Wrapf(ErrConfig, "negative cache ratio (%d)", config.cacheratio)
	}
	if config.logger == nil {
		config.logger = logrus.New()
	}
	b := &Manager{
		nodes:       make([]node, 0, config.nodesize),
		unique:      make(map[nodekey]Node, config.nodesize),
		log:         config.logger,
		maxnodesize: config.maxnodesize,
	}
	b.counters.maxvar = Firstvar - 1
	b.itecache.ratio = config.cacheratio
	b.itecache.cacheinit(config.cachesize)
	b.restrictcache.ratio = config.cacheratio
	b.restrictcache.cacheinit(config.cachesize)
	// creating bddzero, then bddone. They have no children and we do not add
	// them to the unique table.
	b.nodes = append(b.nodes, node{index: 0, high: Invalid, low: Invalid})
	b.nodes = append(b.nodes, node{index: 1, high: Invalid, low: Invalid})
	b.log.WithFields(logrus.Fields{
		"varnum":    varnum,
		"nodesize":  config.nodesize,
		"cachesize": len(b.itecache.table),
	}).Debug("new manager")
	return b, nil
}

// begin starts a new top-level operation. Cache entries produced by previous
// operations become stale.
func (b *Manager) begin() {
	b.callid++
}

// ************************************************************

// One returns the constant true.
func (b *Manager) One() Node {
	return bddone
}

// Zero returns the constant false.
func (b *Manager) Zero() Node {
	return bddzero
}

// From returns a (constant) Node from a boolean value.
func (b *Manager) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Size returns the number of nodes in the arena, constants included.
func (b *Manager) Size() int {
	return len(b.nodes)
}

// Maxvar returns the largest variable index used in a node of the arena, or
// Firstvar-1 if no variable was used yet.
func (b *Manager) Maxvar() int {
	return int(b.counters.maxvar)
}

// Varnum returns the number of variables in the universe [Firstvar..Maxvar].
// This is the universe used by Satcount and Allsat.
func (b *Manager) Varnum() int {
	return b.Maxvar() - Firstvar + 1
}

// Index returns the variable index of node n, or the value (0 or 1) of a
// constant. We return -1 and set the error status if n is not a valid handle.
func (b *Manager) Index(n Node) int {
	if err := b.checkptr(n); err != nil {
		b.seterror(err, "in call to Index")
		return -1
	}
	return int(b.nodes[n].index)
}

// High returns the true branch of n. We return Invalid and set the error
// status if n is not valid or if it is a constant.
func (b *Manager) High(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "in call to High")
	}
	if b.isterminal(n) {
		return b.seterror(ErrInvalidNode, "constant %d has no high branch", n)
	}
	return b.nodes[n].high
}

// Low returns the false branch of n. We return Invalid and set the error
// status if n is not valid or if it is a constant.
func (b *Manager) Low(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "in call to Low")
	}
	if b.isterminal(n) {
		return b.seterror(ErrInvalidNode, "constant %d has no low branch", n)
	}
	return b.nodes[n].low
}
