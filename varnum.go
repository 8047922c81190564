// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

// AddNthIndex returns the node for the positive literal of variable n, that is
// the function that is true exactly when variable n is true. Indices 0 and 1
// are reserved for the constants, so n must be in the interval
// [Firstvar..MaxVar]; otherwise we set the error status and return Invalid.
// Repeated calls with the same index return the same node.
func (b *Manager) AddNthIndex(n int) Node {
	if n < Firstvar {
		return b.seterror(ErrReservedIndex, "index %d in call to AddNthIndex", n)
	}
	if n > MaxVar {
		return b.seterror(ErrOrder, "index %d larger than %d in call to AddNthIndex", n, MaxVar)
	}
	b.begin()
	res := b.makenode(int32(n), bddone, bddzero)
	if res >= 0 {
		b.log.WithField("index", n).Debug("variable introduced")
	}
	return res
}

// NAddNthIndex returns the node for the negative literal of variable n. See
// AddNthIndex for further info.
func (b *Manager) NAddNthIndex(n int) Node {
	if n < Firstvar {
		return b.seterror(ErrReservedIndex, "index %d in call to NAddNthIndex", n)
	}
	if n > MaxVar {
		return b.seterror(ErrOrder, "index %d larger than %d in call to NAddNthIndex", n, MaxVar)
	}
	b.begin()
	return b.makenode(int32(n), bddzero, bddone)
}
