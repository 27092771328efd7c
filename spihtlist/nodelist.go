// Package spihtlist implements the doubly linked coordinate lists
// (LIP, LSP, LIS) that SPIHT threads its significance passes through.
// Row/col are carried together with their original sign: negating
// both coordinates encodes a type-B set entry, matching the coordinate-sign
// convention the set-partitioning pass relies on to tell type-A and
// type-B descendant sets apart without a separate tag field.
package spihtlist

// Node is one coordinate entry in a NodeList.
type Node struct {
	Row, Col int16

	prev, next *Node
}

// Next returns the node following n in its list, or nil at the end.
// Callers that mutate the list while iterating must capture Next
// before calling Remove or Move, exactly as the original C passes do.
func (n *Node) Next() *Node { return n.next }

// NodeList is a doubly linked list of coordinate Nodes.
type NodeList struct {
	start, end *Node
}

// NewNodeList returns an empty list.
func NewNodeList() *NodeList {
	return &NodeList{}
}

// Front returns the first node, or nil if the list is empty.
func (l *NodeList) Front() *Node { return l.start }

// Append adds a new node with the given coordinates to the tail.
func (l *NodeList) Append(row, col int16) *Node {
	node := &Node{Row: row, Col: col, prev: l.end}

	if l.end != nil {
		l.end.next = node
		l.end = node
	} else {
		l.start = node
		l.end = node
	}

	return node
}

// Remove unlinks node from l.
func (l *NodeList) Remove(node *Node) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.start = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.end = node.prev
	}

	node.prev = nil
	node.next = nil
}

// Move removes node from l and appends a fresh node with the same
// coordinates to dst, returning it. Used when a coefficient's set
// changes membership (e.g. a LIS type-A entry re-appended to the same
// list as a type-B entry) mid-pass.
func (l *NodeList) Move(dst *NodeList, node *Node) *Node {
	moved := dst.Append(node.Row, node.Col)
	l.Remove(node)
	return moved
}

// Empty reports whether the list has no nodes.
func (l *NodeList) Empty() bool { return l.start == nil }
