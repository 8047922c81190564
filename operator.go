// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package itebdd

import (
	"strings"

	"github.com/pkg/errors"
)

// Operator describe the binary operations available in Apply.
type Operator int

const (
	OPand     Operator = iota // Boolean conjunction
	OPxor                     // Exclusive or
	OPor                      // Disjunction
	OPnand                    // Negation of and
	OPnor                     // Negation of or
	OPimp                     // Implication
	OPequiv                   // Equivalence
	OPinhibit                 // Inhibition (and not)
	opcount
)

var opnames = [opcount]string{
	OPand:     "and",
	OPxor:     "xor",
	OPor:      "or",
	OPnand:    "nand",
	OPnor:     "nor",
	OPimp:     "imp",
	OPequiv:   "equiv",
	OPinhibit: "inhibition",
}

func (op Operator) String() string {
	if op < 0 || op >= opcount {
		return "unknown"
	}
	return opnames[op]
}

// ParseOperator returns the operator with the given name (case insensitive), as
// returned by the String method.
func ParseOperator(name string) (Operator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range opnames {
		if v == name {
			return Operator(k), nil
		}
	}
	return opcount, errors.Errorf("unknown operator %q", name)
}

// Apply performs all of the basic binary operations on nodes, such as AND, OR
// etc. Left and right are the operands and op is the requested operation. It
// must be one of the following:
//
//	Identifier    Description             Truth table
//
//	OPand         logical and             [0,0,0,1]
//	OPxor         logical xor             [0,1,1,0]
//	OPor          logical or              [0,1,1,1]
//	OPnand        logical not-and         [1,1,1,0]
//	OPnor         logical not-or          [1,0,0,0]
//	OPimp         implication             [1,1,0,1]
//	OPequiv       equivalence             [1,0,0,1]
//	OPinhibit     inhibition (and not)    [0,0,1,0]
func (b *Manager) Apply(left, right Node, op Operator) Node {
	switch op {
	case OPand:
		return b.And(left, right)
	case OPxor:
		return b.Xor(left, right)
	case OPor:
		return b.Or(left, right)
	case OPnand:
		return b.Nand(left, right)
	case OPnor:
		return b.Nor(left, right)
	case OPimp:
		return b.Imp(left, right)
	case OPequiv:
		return b.Equiv(left, right)
	case OPinhibit:
		return b.Inhibition(left, right)
	}
	return b.seterror(ErrConfig, "unauthorized operation (%s) in Apply", op)
}
