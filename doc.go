// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package itebdd defines a hash-consed implementation of Binary Decision Diagrams
(BDD) built around a single ternary operator, if-then-else (ITE), from which
every binary Boolean connective is derived.

Basics

A Manager owns every node ever created. Nodes are handles (integers) into the
Manager's arena, with the convention that 0 (respectively 1) is the handle of
the constant function False (respectively True). These two terminals are
created first, when calling New, and stay valid for the lifetime of the
Manager.

Variables are identified by an integer index. Indices 0 and 1 are reserved for
the terminals, so the first variable has index 2 (see AddNthIndex). Variables
with a smaller index are tested closer to the root of a diagram. There is no
need to declare the number of variables in advance; the value passed to New is
only a sizing hint.

Canonicity

Nodes are created only through makenode, which eliminates redundant tests (a
node whose two children are equal) and looks up every triplet (index, high,
low) in a unicity table before allocating a new node. As a consequence, two
Boolean functions are equal if and only if their nodes have the same handle,
and equality can be tested with ==.

Operations

Function IfThenElse is the universal combinator. It is computed by Shannon
expansion on the topmost variable of its three operands, using Restrict to
compute the cofactors. Function And, Or, Xor, ... are thin wrappers over
IfThenElse. Results computed during one call are memoized, but nothing is
reused between two independent calls.

Errors

Operations that build nodes never return a Go error. When a precondition
fails (for instance an invalid handle or a reserved index) we set the error
status of the Manager and return the handle Invalid. Since Invalid is
rejected by every operation, it is possible to chain operations and check the
status (see Errored and Err) at the end of a computation. When compiling with
the build tag `debug`, such errors panic instead.
*/
package itebdd
