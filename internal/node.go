package internal

import "sync/atomic"

var lastID atomic.Uint64

func nextID() uint64 {
	return lastID.Add(1)
}

// Node describes a signal or reactive to observers.
type Node struct {
	ID    uint64
	Label string
}

type node struct {
	id    uint64
	label string
}

func newNode() node {
	return node{id: nextID()}
}

func (n *node) Info() Node {
	return Node{ID: n.id, Label: n.label}
}

func (n *node) ID() uint64 { return n.id }

func (n *node) SetLabel(label string) { n.label = label }
