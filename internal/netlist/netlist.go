// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package netlist reads combinational circuits described in YAML and builds
// the corresponding diagrams in an itebdd Manager.
//
// A netlist declares its input variables, with their index in the variable
// order, then a list of gates, each one referring to variables or to gates
// defined before it. For example:
//
//	name: halfadder
//	variables:
//	  - {name: a, index: 2}
//	  - {name: b, index: 3}
//	gates:
//	  - {name: sum, op: xor, args: [a, b]}
//	  - {name: carry, op: and, args: [a, b]}
//	outputs: [sum, carry]
package netlist

import (
	"bytes"
	"os"
	"strings"

	"github.com/dalzilio/itebdd"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Variable associates a name to a variable index.
type Variable struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
}

// Gate is a named boolean operation. Op is one of the binary operators
// accepted by itebdd.ParseOperator (and and or also accept more than two
// arguments), "not" with one argument, or "ite" with three.
type Gate struct {
	Name string   `yaml:"name"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

// Netlist is the content of a netlist file.
type Netlist struct {
	Name      string     `yaml:"name"`
	Variables []Variable `yaml:"variables"`
	Gates     []Gate     `yaml:"gates"`
	Outputs   []string   `yaml:"outputs"`
}

// Names "true" and "false" always denote the constants.
const (
	constTrue  = "true"
	constFalse = "false"
)

// Parse decodes and validates a netlist. Unknown fields are rejected.
func Parse(data []byte) (*Netlist, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	nl := &Netlist{}
	if err := dec.Decode(nl); err != nil {
		return nil, errors.Wrap(err, "cannot decode netlist")
	}
	if err := nl.Validate(); err != nil {
		return nil, err
	}
	return nl, nil
}

// Load reads and parses the netlist in file filename.
func Load(filename string) (*Netlist, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read netlist")
	}
	nl, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", filename)
	}
	return nl, nil
}

func arity(op string) (min, max int, err error) {
	switch op {
	case "not":
		return 1, 1, nil
	case "ite":
		return 3, 3, nil
	case "and", "or":
		return 1, -1, nil
	}
	if _, err := itebdd.ParseOperator(op); err != nil {
		return 0, 0, err
	}
	return 2, 2, nil
}

// Validate checks that names are unique and defined before use, that
// variable indices are valid and distinct, that operators are known and used
// with the right number of arguments, and that every output exists.
func (nl *Netlist) Validate() error {
	defined := map[string]bool{constTrue: true, constFalse: true}
	indices := make(map[int]string)
	for _, v := range nl.Variables {
		if v.Name == "" {
			return errors.New("variable with an empty name")
		}
		if defined[v.Name] {
			return errors.Errorf("name %q defined twice", v.Name)
		}
		if v.Index < itebdd.Firstvar || v.Index > itebdd.MaxVar {
			return errors.Errorf("variable %q: index %d out of range [%d..%d]", v.Name, v.Index, itebdd.Firstvar, itebdd.MaxVar)
		}
		if other, ok := indices[v.Index]; ok {
			return errors.Errorf("variables %q and %q share index %d", other, v.Name, v.Index)
		}
		indices[v.Index] = v.Name
		defined[v.Name] = true
	}
	for _, g := range nl.Gates {
		if g.Name == "" {
			return errors.New("gate with an empty name")
		}
		if defined[g.Name] {
			return errors.Errorf("name %q defined twice", g.Name)
		}
		op := strings.ToLower(g.Op)
		min, max, err := arity(op)
		if err != nil {
			return errors.Wrapf(err, "gate %q", g.Name)
		}
		if len(g.Args) < min || (max >= 0 && len(g.Args) > max) {
			return errors.Errorf("gate %q: wrong number of arguments (%d) for %s", g.Name, len(g.Args), op)
		}
		for _, a := range g.Args {
			if !defined[a] {
				return errors.Errorf("gate %q: argument %q is not defined before use", g.Name, a)
			}
		}
		defined[g.Name] = true
	}
	if len(nl.Outputs) == 0 {
		return errors.New("no outputs")
	}
	for _, o := range nl.Outputs {
		if !defined[o] {
			return errors.Errorf("unknown output %q", o)
		}
	}
	return nil
}

// Build constructs the gates of nl in m and returns the node associated with
// every name, variables included. The result is an error if the Manager enters
// an error state, for instance when it runs out of nodes.
func (nl *Netlist) Build(m *itebdd.Manager) (map[string]itebdd.Node, error) {
	env := map[string]itebdd.Node{constTrue: m.One(), constFalse: m.Zero()}
	for _, v := range nl.Variables {
		env[v.Name] = m.AddNthIndex(v.Index)
	}
	if m.Errored() {
		return nil, errors.Wrapf(m.Err(), "declaring variables")
	}
	for _, g := range nl.Gates {
		args := make([]itebdd.Node, len(g.Args))
		for k, a := range g.Args {
			args[k] = env[a]
		}
		switch op := strings.ToLower(g.Op); op {
		case "not":
			env[g.Name] = m.Not(args[0])
		case "ite":
			env[g.Name] = m.IfThenElse(args[0], args[1], args[2])
		case "and":
			env[g.Name] = m.And(args...)
		case "or":
			env[g.Name] = m.Or(args...)
		default:
			o, err := itebdd.ParseOperator(op)
			if err != nil {
				return nil, errors.Wrapf(err, "gate %q", g.Name)
			}
			env[g.Name] = m.Apply(args[0], args[1], o)
		}
		if m.Errored() {
			return nil, errors.Wrapf(m.Err(), "building gate %q", g.Name)
		}
	}
	return env, nil
}
