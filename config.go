// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import "github.com/sirupsen/logrus"

// configs is used to store the values of different parameters of the Manager
type configs struct {
	varnum      int                // estimated number of variables (sizing hint)
	nodesize    int                // initial capacity of the arena
	cachesize   int                // initial cache size
	cacheratio  int                // ratio (%) between cache size and arena size (0 if size constant)
	maxnodesize int                // maximum total number of nodes (0 if no limit)
	logger      logrus.FieldLogger // destination of debug and error entries
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	// we build enough nodes to include the constants and the two literals of
	// each variable
	c.nodesize = 2*varnum + 2
	c.cachesize = _DEFAULTCACHESIZE
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the arena. The arena grows when needed.
// Values smaller than the default (large enough for the constants and two
// literals per estimated variable) are ignored.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the arena, constants included. An
// operation trying to raise the number of nodes above this limit sets the error
// status to ErrMemory and returns Invalid. The default value (0) means that
// there is no limit, in which case allocation can panic if we exhaust all the
// available memory.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the initial number of entries in the operation caches. The default value
// is 10 000. The size is rounded to the next prime number.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a "cache ratio" (%) so that caches can grow with the arena. With a
// cache ratio of r, we have r available entries in the cache for every 100
// nodes in the arena. The default value (0) means that the cache size never
// grows.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used for debug entries and error reports. By default we use a
// fresh logrus logger at Info level, meaning that the Manager is silent.
func Logger(logger logrus.FieldLogger) func(*configs) {
	return func(c *configs) {
		c.logger = logger
	}
}
