// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"math/big"

	"github.com/pkg/errors"
)

// Restrict returns the node for the function obtained from root by fixing the
// variable index to the constant val. The result does not depend on variable
// index. Indices outside the range of variables are accepted and leave root
// unchanged.
func (b *Manager) Restrict(root Node, index int, val bool) Node {
	if b.checkptr(root) != nil {
		return b.nodeError(root, "Restrict", "root")
	}
	if index < Firstvar || index > MaxVar {
		return root
	}
	b.begin()
	return b.restrict(root, int32(index), val)
}

func (b *Manager) restrict(n Node, index int32, val bool) Node {
	lvl := b.level(n)
	// terminals, or nodes that are after index in the order, do not depend on
	// index
	if lvl > index {
		return n
	}
	if lvl == index {
		if val {
			return b.restrict(b.high(n), index, val)
		}
		return b.restrict(b.low(n), index, val)
	}
	if res, ok := b.matchrestrict(n, index, val); ok {
		return res
	}
	high := b.restrict(b.high(n), index, val)
	low := b.restrict(b.low(n), index, val)
	return b.setrestrict(n, index, val, b.makenode(lvl, high, low))
}

// IfThenElse computes the node for the expression (f ? g : h), meaning [(f & g)
// | (!f & h)]. It is the operator used to implement all the other Boolean
// connectives.
func (b *Manager) IfThenElse(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.nodeError(f, "IfThenElse", "if")
	}
	if b.checkptr(g) != nil {
		return b.nodeError(g, "IfThenElse", "then")
	}
	if b.checkptr(h) != nil {
		return b.nodeError(h, "IfThenElse", "else")
	}
	b.begin()
	return b.ite(f, g, h)
}

func (b *Manager) ite(f, g, h Node) Node {
	// an Invalid operand means that an allocation failed below us
	if f < 0 || g < 0 || h < 0 {
		return Invalid
	}
	switch {
	case f == bddone:
		return g
	case f == bddzero:
		return h
	case g == h:
		return g
	case (g == bddone) && (h == bddzero):
		return f
	}
	if res, ok := b.matchite(f, g, h); ok {
		return res
	}
	// we split on the topmost variable of the three operands
	top := min3(b.level(f), b.level(g), b.level(h))
	high := b.ite(b.restrict(f, top, true), b.restrict(g, top, true), b.restrict(h, top, true))
	if high < 0 {
		return Invalid
	}
	low := b.ite(b.restrict(f, top, false), b.restrict(g, top, false), b.restrict(h, top, false))
	return b.setite(f, g, h, b.makenode(top, high, low))
}

// Exist returns the existential quantification of n for the variables in vars,
// meaning the disjunction of the restrictions of n to the two possible values
// of each variable.
func (b *Manager) Exist(n Node, vars ...int) Node {
	if b.checkptr(n) != nil {
		return b.nodeError(n, "Exist", "node")
	}
	for _, v := range vars {
		if v < Firstvar || v > MaxVar {
			return b.seterror(ErrReservedIndex, "variable %d in call to Exist", v)
		}
	}
	b.begin()
	res := n
	for _, v := range vars {
		high := b.restrict(res, int32(v), true)
		low := b.restrict(res, int32(v), false)
		res = b.ite(high, bddone, low)
		if res < 0 {
			return Invalid
		}
	}
	return res
}

// ************************************************************

// satlevel is the level of n when counting assignments: the constants are just
// after the last variable of the universe.
func (b *Manager) satlevel(n Node) int32 {
	if n < 2 {
		return int32(b.counters.maxvar) + 1
	}
	return b.nodes[n].index
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, over the variables in [Firstvar..Maxvar]. We return a
// result using arbitrary-precision arithmetic to avoid possible overflows. The
// result is zero (and we set the error status of b) if there is an error.
func (b *Manager) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if b.checkptr(n) != nil {
		b.nodeError(n, "Satcount", "node")
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(b.satlevel(n)-Firstvar), 1)
	satc := make(map[Node]*big.Int)
	return res.Mul(res, b.satcount(n, satc))
}

func (b *Manager) satcount(n Node, satc map[Node]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	level := b.satlevel(n)
	low := b.low(n)
	high := b.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.satlevel(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.satlevel(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat Iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f where
// the entry k is about variable k+Firstvar and is either 0 if the variable is
// false, 1 if it is true, and -1 if it is a don't care. The slice is reused
// between calls. We stop and return an error if f returns an error at some
// point.
func (b *Manager) Allsat(n Node, f func([]int) error) error {
	if err := b.checkptr(n); err != nil {
		return errors.Wrap(err, "in call to Allsat")
	}
	prof := make([]int, b.Varnum())
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes
	return b.allsat(n, prof, f)
}

func (b *Manager) allsat(n Node, prof []int, f func([]int) error) error {
	if n == bddone {
		return f(prof)
	}
	if n == bddzero {
		return nil
	}
	level := b.satlevel(n)
	if low := b.low(n); low != bddzero {
		prof[level-Firstvar] = 0
		for v := b.satlevel(low) - 1; v > level; v-- {
			prof[v-Firstvar] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := b.high(n); high != bddzero {
		prof[level-Firstvar] = 1
		for v := b.satlevel(high) - 1; v > level; v-- {
			prof[v-Firstvar] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Satone returns a cube (a conjunction of literals) that implies n, or Zero if n
// is not satisfiable. We follow the low branch whenever possible.
func (b *Manager) Satone(n Node) Node {
	if b.checkptr(n) != nil {
		return b.nodeError(n, "Satone", "node")
	}
	b.begin()
	return b.satone(n)
}

func (b *Manager) satone(n Node) Node {
	if n < 2 {
		return n
	}
	if b.low(n) == bddzero {
		return b.makenode(b.level(n), b.satone(b.high(n)), bddzero)
	}
	return b.makenode(b.level(n), bddzero, b.satone(b.low(n)))
}

// ************************************************************

// GetNodes returns the nodes of the arena labelled with index, in creation
// order. With index 0 or 1 we return the corresponding constant.
func (b *Manager) GetNodes(index int) []Node {
	res := []Node{}
	for k, v := range b.nodes {
		if int(v.index) == index {
			res = append(res, Node(k))
		}
	}
	return res
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence roots..., or all the nodes of the arena if roots is absent. The
// parameters to function f are the handle, the index, and the handles of the
// high and low successors of each node. The two constants are always visited
// first, with successors set to Invalid.
//
// Nodes are visited in creation order, meaning that a node is always visited
// after its successors. We stop the computation and return an error if f
// returns an error at some point.
func (b *Manager) Allnodes(f func(id Node, index int, high, low Node) error, roots ...Node) error {
	for _, v := range roots {
		if err := b.checkptr(v); err != nil {
			return errors.Wrap(err, "in call to Allnodes")
		}
	}
	var marked []bool
	if len(roots) != 0 {
		marked = b.markfrom(roots)
	}
	for k, v := range b.nodes {
		if k > 1 && marked != nil && !marked[k] {
			continue
		}
		if err := f(Node(k), int(v.index), v.high, v.low); err != nil {
			return err
		}
	}
	return nil
}

// markfrom returns the set of nodes reachable from roots. Since nodes are
// shared, we use an explicit stack and never visit a node twice.
func (b *Manager) markfrom(roots []Node) []bool {
	marked := make([]bool, len(b.nodes))
	stack := append([]Node{}, roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n < 2 || marked[n] {
			continue
		}
		marked[n] = true
		stack = append(stack, b.nodes[n].high, b.nodes[n].low)
	}
	return marked
}
