// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import "sync/atomic"

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer. It is therefore a perfect hash: no collisions
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash function for ITE is #(f,g,h).

func (b *Manager) matchite(f, g, h Node) (Node, bool) {
	entry := b.itecache.table[_TRIPLE(int(f), int(g), int(h), len(b.itecache.table))]
	if entry.id == b.callid && entry.a == int(f) && entry.b == int(g) && entry.c == int(h) {
		atomic.AddUint64(&b.counters.opHit, 1)
		return entry.res, true
	}
	atomic.AddUint64(&b.counters.opMiss, 1)
	return Invalid, false
}

func (b *Manager) setite(f, g, h, res Node) Node {
	if res < 0 {
		return Invalid
	}
	b.itecache.table[_TRIPLE(int(f), int(g), int(h), len(b.itecache.table))] = cacheData{
		res: res,
		a:   int(f),
		b:   int(g),
		c:   int(h),
		id:  b.callid,
	}
	return res
}

// ************************************************************

// The hash function for Restrict is #(n, index, val).

func boolint(val bool) int {
	if val {
		return 1
	}
	return 0
}

func (b *Manager) matchrestrict(n Node, index int32, val bool) (Node, bool) {
	entry := b.restrictcache.table[_TRIPLE(int(n), int(index), boolint(val), len(b.restrictcache.table))]
	if entry.id == b.callid && entry.a == int(n) && entry.b == int(index) && entry.c == boolint(val) {
		atomic.AddUint64(&b.counters.opHit, 1)
		return entry.res, true
	}
	atomic.AddUint64(&b.counters.opMiss, 1)
	return Invalid, false
}

func (b *Manager) setrestrict(n Node, index int32, val bool, res Node) Node {
	if res < 0 {
		return Invalid
	}
	b.restrictcache.table[_TRIPLE(int(n), int(index), boolint(val), len(b.restrictcache.table))] = cacheData{
		res: res,
		a:   int(n),
		b:   int(index),
		c:   boolint(val),
		id:  b.callid,
	}
	return res
}
