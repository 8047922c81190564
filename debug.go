// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package itebdd

// _DEBUG turns precondition violations into panics and enables extra checks on
// the invariants of the arena.
const _DEBUG bool = true
