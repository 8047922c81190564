// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package itebdd

import (
	"fmt"
	"math/big"
	"sync/atomic"
)

// ************************************************************

// cache is used for memoizing ite and restrict results during one top-level
// operation. Every entry is tagged with the identifier of the call that
// produced it, so entries from a previous call never match and we do not need
// to clear the table between calls.
type cache struct {
	ratio int // value used to resize the cache as a percentage of the arena size
	table []cacheData
}

// cacheData is a unit of information stored in the ITE and restrict caches
type cacheData struct {
	res Node
	a   int
	b   int
	c   int
	id  uint64
}

// primeGte returns the smallest odd prime greater or equal to n. Table sizes
// are primes so that the hash of a triplet spreads over every slot.
func primeGte(n int) int {
	if n <= 3 {
		return 3
	}
	n |= 1
	for !big.NewInt(int64(n)).ProbablyPrime(0) {
		n += 2
	}
	return n
}

func (bc *cache) cacheinit(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	bc.table = make([]cacheData, primeGte(size))
}

// cacheresize grows the table when a ratio is set. Entries are lost, which is
// harmless since they are only valid during a single call anyway.
func (bc *cache) cacheresize(nodes int) bool {
	if bc.ratio <= 0 {
		return false
	}
	size := nodes * bc.ratio / 100
	if size <= len(bc.table) {
		return false
	}
	bc.cacheinit(size)
	return true
}

// ************************************************************

// counters stores statistics about the Manager. Fields are only updated with
// atomic operations so that they can be read while a computation is running.
type counters struct {
	produced     uint64 // Total number of new nodes ever produced
	uniqueAccess uint64 // accesses to the unique node table
	uniqueHit    uint64 // entries actually found in the the unique node table
	uniqueMiss   uint64 // entries not found in the the unique node table
	reduced      uint64 // calls to makenode eliminated because high == low
	opHit        uint64 // entries found in the operation caches
	opMiss       uint64 // entries not found in the operation caches
	maxvar       int64  // largest variable index used in a node
}

// Counters is a snapshot of the statistics of a Manager.
type Counters struct {
	Nodes        uint64 // Number of nodes in the arena, constants included
	Variables    uint64 // Number of variables in the universe [Firstvar..Maxvar]
	UniqueAccess uint64 // Accesses to the unique table
	UniqueHit    uint64 // Nodes found in the unique table
	UniqueMiss   uint64 // Nodes not found, hence created
	Reductions   uint64 // Redundant tests eliminated
	CacheHit     uint64 // Results found in the operation caches
	CacheMiss    uint64 // Results not found in the operation caches
}

// Counters returns the current statistics of b. It is safe to call Counters
// from another goroutine while b is computing.
func (b *Manager) Counters() Counters {
	maxvar := atomic.LoadInt64(&b.counters.maxvar)
	vars := uint64(0)
	if maxvar >= Firstvar {
		vars = uint64(maxvar - Firstvar + 1)
	}
	return Counters{
		Nodes:        atomic.LoadUint64(&b.counters.produced) + 2,
		Variables:    vars,
		UniqueAccess: atomic.LoadUint64(&b.counters.uniqueAccess),
		UniqueHit:    atomic.LoadUint64(&b.counters.uniqueHit),
		UniqueMiss:   atomic.LoadUint64(&b.counters.uniqueMiss),
		Reductions:   atomic.LoadUint64(&b.counters.reduced),
		CacheHit:     atomic.LoadUint64(&b.counters.opHit),
		CacheMiss:    atomic.LoadUint64(&b.counters.opMiss),
	}
}

// Prints information about the cache performance. The information contains the
// number of accesses to the unique node table, the number of times a node was
// (not) found there and the number of reductions. Hit and miss count is also
// given for the operation caches.
func (c Counters) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.UniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.UniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.UniqueMiss)
	res += fmt.Sprintf("Reductions:     %d\n", c.Reductions)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.CacheHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.CacheMiss)
	return res
}
