// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"math"

	"github.com/pkg/errors"
)

// MaxVar is the largest index that can be used for a variable. We keep indices
// in an int32 and reserve the largest value for the level of the terminals.
const MaxVar = math.MaxInt32 - 1

// Firstvar is the index of the first variable; indices 0 and 1 are reserved for
// the constants False and True.
const Firstvar = 2

// _TERMLEVEL is the level used for terminals when comparing positions in the
// variable order. Constants always sit below every variable.
const _TERMLEVEL int32 = math.MaxInt32

// _DEFAULTCACHESIZE is the default number of entries in the operation caches.
const _DEFAULTCACHESIZE int = 10000

// Errors reported by the Manager. Use errors.Is (or errors.Cause) on the result
// of Err to test for a specific kind of failure.
var (
	ErrInvalidNode   = errors.New("invalid node")
	ErrReservedIndex = errors.New("reserved terminal index")
	ErrOrder         = errors.New("variable order violation")
	ErrMemory        = errors.New("unable to allocate node")
	ErrConfig        = errors.New("bad configuration")
)
