// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

// All the connectives are thin wrappers over IfThenElse. Each call counts as
// one top-level operation.

// And returns the logical 'and' of a sequence of nodes. It returns One when the
// sequence is empty.
func (b *Manager) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddone
	}
	return b.IfThenElse(n[0], b.And(n[1:]...), bddzero)
}

// Or returns the logical 'or' of a sequence of nodes. It returns Zero when the
// sequence is empty.
func (b *Manager) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddzero
	}
	return b.IfThenElse(n[0], bddone, b.Or(n[1:]...))
}

// Not returns the negation (!n) of expression n.
func (b *Manager) Not(n Node) Node {
	return b.IfThenElse(n, bddzero, bddone)
}

// Xor returns the exclusive or of n1 and n2.
func (b *Manager) Xor(n1, n2 Node) Node {
	return b.IfThenElse(n1, b.Not(n2), n2)
}

// Nand returns the negation of (n1 & n2).
func (b *Manager) Nand(n1, n2 Node) Node {
	return b.IfThenElse(n1, b.Not(n2), bddone)
}

// Nor returns the negation of (n1 | n2).
func (b *Manager) Nor(n1, n2 Node) Node {
	return b.IfThenElse(n1, bddzero, b.Not(n2))
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (b *Manager) Equiv(n1, n2 Node) Node {
	return b.IfThenElse(n1, n2, b.Not(n2))
}

// Inhibition returns (n1 & !n2), that is n1 inhibited by n2.
func (b *Manager) Inhibition(n1, n2 Node) Node {
	return b.IfThenElse(n1, b.Not(n2), bddzero)
}

// Imp returns the logical 'implication' between two nodes.
func (b *Manager) Imp(n1, n2 Node) Node {
	return b.IfThenElse(n1, n2, bddone)
}

// Equal tests equivalence between nodes. Since nodes are canonical, this is
// the same as n1 == n2, but we also return false if one of the node is not
// valid.
func (b *Manager) Equal(n1, n2 Node) bool {
	if b.checkptr(n1) != nil || b.checkptr(n2) != nil {
		return false
	}
	return n1 == n2
}
