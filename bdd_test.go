// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eval computes the value of n for an assignment of the variables, by
// restricting n until we reach a constant.
func eval(t *testing.T, b *Manager, n Node, assignment map[int]bool) bool {
	t.Helper()
	for v, val := range assignment {
		n = b.Restrict(n, v, val)
	}
	require.True(t, n == b.Zero() || n == b.One(), "assignment does not cover node %s", b.Print(n))
	return n == b.One()
}

func TestTerminals(t *testing.T) {
	bdd, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, Node(0), bdd.Zero())
	assert.Equal(t, Node(1), bdd.One())
	assert.Equal(t, 2, bdd.Size())
	assert.Equal(t, 0, bdd.Index(bdd.Zero()))
	assert.Equal(t, 1, bdd.Index(bdd.One()))
	assert.Equal(t, bdd.One(), bdd.From(true))
	assert.Equal(t, bdd.Zero(), bdd.From(false))

	x := bdd.AddNthIndex(2)
	y := bdd.AddNthIndex(7)
	bdd.And(x, y)
	assert.Equal(t, Node(0), bdd.Zero(), "terminals are stable")
	assert.Equal(t, Node(1), bdd.One(), "terminals are stable")
	assert.NotEqual(t, bdd.Zero(), x)
	assert.NotEqual(t, bdd.One(), x)
	assert.Equal(t, []Node{bdd.Zero()}, bdd.GetNodes(0))
	assert.Equal(t, []Node{bdd.One()}, bdd.GetNodes(1))
}

func TestMakeNodeCanonicity(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	x3 := bdd.AddNthIndex(3)
	x4 := bdd.AddNthIndex(4)
	size := bdd.Size()

	n1 := bdd.MakeNode(2, x3, x4)
	n2 := bdd.MakeNode(2, x3, x4)
	assert.Equal(t, n1, n2)
	assert.Equal(t, size+1, bdd.Size(), "only one node created")

	n3 := bdd.MakeNode(2, x4, x3)
	assert.NotEqual(t, n1, n3)
	assert.Equal(t, 2, bdd.Index(n1))
	assert.Equal(t, x3, bdd.High(n1))
	assert.Equal(t, x4, bdd.Low(n1))
	assert.Equal(t, []Node{n1, n3}, bdd.GetNodes(2))

	// literals are built with makenode too
	assert.Equal(t, x3, bdd.MakeNode(3, bdd.One(), bdd.Zero()))
	assert.Equal(t, x3, bdd.AddNthIndex(3))
	require.False(t, bdd.Errored(), bdd.Error())
}

func TestMakeNodeReduction(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	x := bdd.And(bdd.AddNthIndex(3), bdd.AddNthIndex(5))
	size := bdd.Size()
	reductions := bdd.Counters().Reductions
	assert.Equal(t, x, bdd.MakeNode(2, x, x))
	assert.Equal(t, bdd.One(), bdd.MakeNode(2, bdd.One(), bdd.One()))
	assert.Equal(t, bdd.Zero(), bdd.MakeNode(9, bdd.Zero(), bdd.Zero()))
	// equal children are returned even when index does not precede them
	x3 := bdd.AddNthIndex(3)
	assert.Equal(t, x3, bdd.MakeNode(5, x3, x3))
	assert.Equal(t, x, bdd.MakeNode(3, x, x))
	require.False(t, bdd.Errored(), bdd.Error())
	assert.Equal(t, size, bdd.Size(), "no node created")
	assert.EqualValues(t, 5, bdd.Counters().Reductions-reductions)
}

func TestMakeNodePreconditions(t *testing.T) {
	var makeTests = []struct {
		name      string
		index     int
		high, low Node
		expected  error
	}{
		{"reserved index 0", 0, 1, 0, ErrReservedIndex},
		{"reserved index 1", 1, 1, 0, ErrReservedIndex},
		{"negative index", -4, 1, 0, ErrReservedIndex},
		{"invalid high", 3, Invalid, 0, ErrInvalidNode},
		{"dangling low", 3, 1, 1000, ErrInvalidNode},
		{"order", 4, 2, 0, ErrOrder},
		{"same level", 3, 2, 0, ErrOrder},
	}
	for _, tt := range makeTests {
		t.Run(tt.name, func(t *testing.T) {
			bdd, err := New(2)
			require.NoError(t, err)
			bdd.AddNthIndex(3)
			size := bdd.Size()
			assert.Equal(t, Invalid, bdd.MakeNode(tt.index, tt.high, tt.low))
			assert.True(t, bdd.Errored())
			assert.ErrorIs(t, bdd.Err(), tt.expected)
			assert.Equal(t, size, bdd.Size(), "table untouched")
		})
	}
}

func TestAddNthIndex(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	l2 := bdd.AddNthIndex(2)
	assert.Equal(t, l2, bdd.AddNthIndex(2))
	assert.Equal(t, bdd.One(), bdd.High(l2))
	assert.Equal(t, bdd.Zero(), bdd.Low(l2))
	assert.Equal(t, 1, bdd.Varnum())
	bdd.AddNthIndex(5)
	assert.Equal(t, 5, bdd.Maxvar())
	assert.Equal(t, 4, bdd.Varnum())
	require.False(t, bdd.Errored())

	assert.Equal(t, Invalid, bdd.AddNthIndex(1))
	assert.ErrorIs(t, bdd.Err(), ErrReservedIndex)
	assert.Contains(t, bdd.Error(), "AddNthIndex")
}

func TestRestrict(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	for _, v := range []int{2, 3, 17} {
		l := bdd.AddNthIndex(v)
		assert.Equal(t, bdd.One(), bdd.Restrict(l, v, true))
		assert.Equal(t, bdd.Zero(), bdd.Restrict(l, v, false))
	}
	for _, idx := range []int{0, 1, 2, 3, 100} {
		for _, val := range []bool{true, false} {
			assert.Equal(t, bdd.One(), bdd.Restrict(bdd.One(), idx, val))
			assert.Equal(t, bdd.Zero(), bdd.Restrict(bdd.Zero(), idx, val))
		}
	}
	x, y, z := bdd.AddNthIndex(2), bdd.AddNthIndex(3), bdd.AddNthIndex(4)
	f := bdd.Or(bdd.And(x, y), bdd.And(bdd.Not(x), z))
	assert.Equal(t, y, bdd.Restrict(f, 2, true))
	assert.Equal(t, z, bdd.Restrict(f, 2, false))
	assert.Equal(t, bdd.Or(x, z), bdd.Restrict(f, 3, true))
	assert.Equal(t, bdd.And(bdd.Not(x), z), bdd.Restrict(f, 3, false))
	assert.Equal(t, f, bdd.Restrict(f, 9, true), "variable not in f")
	assert.Equal(t, f, bdd.Restrict(f, 0, true), "reserved index")
	require.False(t, bdd.Errored(), bdd.Error())

	assert.Equal(t, Invalid, bdd.Restrict(Invalid, 2, true))
	assert.ErrorIs(t, bdd.Err(), ErrInvalidNode)
}

func TestConnectives(t *testing.T) {
	var opTests = []struct {
		name string
		op   func(b *Manager, n1, n2 Node) Node
		f    func(a, b bool) bool
	}{
		{"and", func(b *Manager, n1, n2 Node) Node { return b.And(n1, n2) }, func(a, b bool) bool { return a && b }},
		{"or", func(b *Manager, n1, n2 Node) Node { return b.Or(n1, n2) }, func(a, b bool) bool { return a || b }},
		{"xor", (*Manager).Xor, func(a, b bool) bool { return a != b }},
		{"nand", (*Manager).Nand, func(a, b bool) bool { return !(a && b) }},
		{"nor", (*Manager).Nor, func(a, b bool) bool { return !(a || b) }},
		{"equiv", (*Manager).Equiv, func(a, b bool) bool { return a == b }},
		{"inhibition", (*Manager).Inhibition, func(a, b bool) bool { return a && !b }},
		{"imp", (*Manager).Imp, func(a, b bool) bool { return !a || b }},
		{"not", func(b *Manager, n1, _ Node) Node { return b.Not(n1) }, func(a, _ bool) bool { return !a }},
	}
	for _, tt := range opTests {
		t.Run(tt.name, func(t *testing.T) {
			bdd, err := New(2)
			require.NoError(t, err)
			l2 := bdd.AddNthIndex(2)
			l3 := bdd.AddNthIndex(3)
			n := tt.op(bdd, l2, l3)
			for _, a := range []bool{false, true} {
				for _, b := range []bool{false, true} {
					actual := eval(t, bdd, n, map[int]bool{2: a, 3: b})
					assert.Equal(t, tt.f(a, b), actual, "%s(%v, %v)", tt.name, a, b)
				}
			}
			// idempotence: same operands give the same node
			assert.Equal(t, n, tt.op(bdd, l2, l3))
			require.False(t, bdd.Errored(), bdd.Error())
		})
	}
}

func TestApply(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	l2 := bdd.AddNthIndex(2)
	l3 := bdd.AddNthIndex(3)
	// truth tables in the order [00, 01, 10, 11]
	var applyTests = []struct {
		op    Operator
		table [4]bool
	}{
		{OPand, [4]bool{false, false, false, true}},
		{OPxor, [4]bool{false, true, true, false}},
		{OPor, [4]bool{false, true, true, true}},
		{OPnand, [4]bool{true, true, true, false}},
		{OPnor, [4]bool{true, false, false, false}},
		{OPimp, [4]bool{true, true, false, true}},
		{OPequiv, [4]bool{true, false, false, true}},
		{OPinhibit, [4]bool{false, false, true, false}},
	}
	for _, tt := range applyTests {
		n := bdd.Apply(l2, l3, tt.op)
		for k, expected := range tt.table {
			actual := eval(t, bdd, n, map[int]bool{2: k&2 != 0, 3: k&1 != 0})
			assert.Equal(t, expected, actual, "%s on %02b", tt.op, k)
		}
		op, err := ParseOperator(tt.op.String())
		require.NoError(t, err)
		assert.Equal(t, tt.op, op)
	}
	_, err = ParseOperator("ite")
	assert.Error(t, err)
	assert.Equal(t, Invalid, bdd.Apply(l2, l3, Operator(42)))
	assert.ErrorIs(t, bdd.Err(), ErrConfig)
}

func TestScenarioAnd(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	l2 := bdd.AddNthIndex(2)
	l3 := bdd.AddNthIndex(3)
	and := bdd.And(l2, l3)
	assert.Equal(t, bdd.Zero(), bdd.Restrict(and, 2, false))
	assert.Equal(t, bdd.One(), bdd.Restrict(bdd.Restrict(and, 2, true), 3, true))
	assert.Equal(t, l3, bdd.Restrict(and, 2, true))
}

func TestInvalidPropagation(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	l2 := bdd.AddNthIndex(2)
	bad := bdd.AddNthIndex(0)
	assert.Equal(t, Invalid, bad)
	// chained operations keep returning Invalid
	res := bdd.Or(bdd.And(l2, bad), l2)
	assert.Equal(t, Invalid, res)
	assert.ErrorIs(t, bdd.Err(), ErrReservedIndex, "first error is kept")
	assert.False(t, bdd.Equal(res, res))
	assert.Equal(t, -1, bdd.Index(Invalid))
	assert.Equal(t, Invalid, bdd.High(bdd.One()))
	assert.Equal(t, Invalid, bdd.Low(bdd.Zero()))
	// base cases never hide an Invalid operand
	assert.Equal(t, Invalid, bdd.ite(Invalid, bdd.One(), bdd.One()))
	assert.Equal(t, Invalid, bdd.ite(bdd.One(), l2, Invalid))
	assert.Equal(t, Invalid, bdd.ite(l2, bdd.One(), Invalid))
}

func TestExistOutOfMemory(t *testing.T) {
	bdd, err := New(3, Maxnodesize(7))
	require.NoError(t, err)
	x, y, z := bdd.AddNthIndex(2), bdd.AddNthIndex(3), bdd.AddNthIndex(4)
	// the arena has room for x ? 1 : z (y true) but not for x ? 0 : z (y
	// false)
	f := bdd.IfThenElse(x, y, z)
	require.NotEqual(t, Invalid, f)
	require.False(t, bdd.Errored(), bdd.Error())
	assert.Equal(t, Invalid, bdd.Exist(f, 3))
	assert.ErrorIs(t, bdd.Err(), ErrMemory)
}

func TestMaxnodesize(t *testing.T) {
	bdd, err := New(8, Maxnodesize(6))
	require.NoError(t, err)
	for i := 2; i < 6; i++ {
		assert.NotEqual(t, Invalid, bdd.AddNthIndex(i))
	}
	require.False(t, bdd.Errored())
	// the arena is full: existing nodes are still found
	assert.Equal(t, bdd.AddNthIndex(2), Node(2))
	assert.Equal(t, Invalid, bdd.AddNthIndex(6))
	assert.ErrorIs(t, bdd.Err(), ErrMemory)
	assert.Equal(t, Invalid, bdd.And(bdd.AddNthIndex(2), bdd.AddNthIndex(3)))
	assert.Equal(t, 6, bdd.Size())
}

func TestNewConfig(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, ErrConfig)
	_, err = New(2, Cachesize(0))
	assert.ErrorIs(t, err, ErrConfig)
	_, err = New(2, Cacheratio(-3))
	assert.ErrorIs(t, err, ErrConfig)
	_, err = New(2, Maxnodesize(1))
	assert.ErrorIs(t, err, ErrConfig)

	bdd, err := New(2, Nodesize(2), Cachesize(100), Cacheratio(50))
	require.NoError(t, err)
	assert.Equal(t, 101, len(bdd.itecache.table), "cache size is a prime")
	for size, prime := range map[int]int{-5: 3, 0: 3, 4: 5, 9: 11, 24: 29, 10000: 10007} {
		assert.Equal(t, prime, primeGte(size), "primeGte(%d)", size)
	}
	assert.GreaterOrEqual(t, cap(bdd.nodes), 6, "nodesize smaller than the default is ignored")
}

func TestCacheratio(t *testing.T) {
	bdd, err := New(1, Cachesize(3), Cacheratio(100))
	require.NoError(t, err)
	f := bdd.One()
	for i := 2; i < 40; i++ {
		f = bdd.Xor(f, bdd.AddNthIndex(i))
	}
	require.False(t, bdd.Errored())
	assert.Greater(t, len(bdd.itecache.table), 3, "cache grows with the arena")
	assert.GreaterOrEqual(t, len(bdd.itecache.table), cap(bdd.nodes)/2)
	assert.Equal(t, "137438953472", bdd.Satcount(f).String())
}

func TestAllnodes(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	x, y, z := bdd.AddNthIndex(2), bdd.AddNthIndex(3), bdd.AddNthIndex(4)
	f := bdd.Xor(x, y)
	g := bdd.And(f, z)

	var all []Node
	require.NoError(t, bdd.Allnodes(func(id Node, index int, high, low Node) error {
		all = append(all, id)
		return nil
	}))
	assert.Len(t, all, bdd.Size())
	for k, v := range all {
		assert.Equal(t, Node(k), v, "creation order")
	}

	var reach []Node
	require.NoError(t, bdd.Allnodes(func(id Node, index int, high, low Node) error {
		if id > 1 {
			assert.Less(t, int(high), int(id), "successors are created first")
			assert.Less(t, int(low), int(id), "successors are created first")
		}
		reach = append(reach, id)
		return nil
	}, f, g))
	// x is only used as a literal, while y and z are shared by f and g
	expected := []Node{0, 1, y, z, bdd.Not(y), f, 7, 8, g}
	if diff := cmp.Diff(expected, reach); diff != "" {
		t.Errorf("Allnodes(f, g) mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, reach, x)

	assert.Error(t, bdd.Allnodes(func(id Node, index int, high, low Node) error { return nil }, Node(999)))
}
