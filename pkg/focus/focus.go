// Package focus tracks which input holds keyboard focus.
//
// A Manager owns an ordered set of nodes and at most one primary node.
// Requesting focus on a node blurs the previous primary, so focus is
// exclusive within a manager. Nodes may have a parent: a parent has focus
// while any of its descendants is primary.
package focus

import (
	"sync"

	"github.com/go-drift/formkit/pkg/core"
)

// Node is a focusable element registered with a Manager.
type Node struct {
	// Label identifies the node in logs and replay scripts.
	Label string
	// SkipTraversal excludes the node from MoveFocus. RequestFocus still works.
	SkipTraversal bool
	// CanFocus refuses focus while it reports false. Nil always allows.
	CanFocus func() bool
	// OnFocusChange runs after HasFocus flips. The manager lock is not held.
	OnFocusChange func(hasFocus bool)

	manager         *Manager
	parent          *Node
	hasFocus        bool
	hasPrimaryFocus bool
	removed         bool
}

// canReceiveFocus reports whether the node can receive focus.
func (n *Node) canReceiveFocus() bool {
	if n == nil {
		return false
	}
	n.manager.mu.Lock()
	removed := n.removed
	n.manager.mu.Unlock()
	if removed {
		return false
	}
	return n.CanFocus == nil || n.CanFocus()
}

// HasFocus reports whether this node or a descendant has focus.
func (n *Node) HasFocus() bool {
	n.manager.mu.Lock()
	defer n.manager.mu.Unlock()
	return n.hasFocus
}

// HasPrimaryFocus reports whether this node is the primary focus.
func (n *Node) HasPrimaryFocus() bool {
	n.manager.mu.Lock()
	defer n.manager.mu.Unlock()
	return n.hasPrimaryFocus
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node {
	n.manager.mu.Lock()
	defer n.manager.mu.Unlock()
	return n.parent
}

// SetParent attaches n below parent. Both must belong to the same manager.
func (n *Node) SetParent(parent *Node) {
	if parent != nil && parent.manager != n.manager {
		panic("focus: parent belongs to another manager")
	}
	n.manager.mu.Lock()
	defer n.manager.mu.Unlock()
	n.parent = parent
}

// RequestFocus makes n the primary focus. It reports whether n holds
// primary focus afterwards.
func (n *Node) RequestFocus() bool {
	if !n.canReceiveFocus() {
		return false
	}
	n.manager.setPrimary(n)
	return n.HasPrimaryFocus()
}

// Unfocus clears the primary focus if it is n or one of its descendants.
func (n *Node) Unfocus() bool {
	m := n.manager
	m.mu.Lock()
	within := m.primary != nil && m.primary.isWithin(n)
	m.mu.Unlock()
	if !within {
		return false
	}
	return m.setPrimary(nil)
}

// Remove unregisters n. If n or a descendant was primary, the primary is
// cleared without running OnFocusChange.
func (n *Node) Remove() {
	m := n.manager
	m.mu.Lock()
	if n.removed {
		m.mu.Unlock()
		return
	}
	n.removed = true
	cleared := m.primary != nil && m.primary.isWithin(n)
	if cleared {
		m.primary.hasPrimaryFocus = false
		for _, c := range ancestry(m.primary) {
			c.hasFocus = false
		}
		m.primary = nil
	}
	for i, c := range m.nodes {
		if c == n {
			m.nodes = append(m.nodes[:i:i], m.nodes[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	if cleared {
		m.changed.Notify()
	}
}

// isWithin reports whether n is root or one of its descendants.
// The manager lock must be held.
func (n *Node) isWithin(root *Node) bool {
	for c := n; c != nil; c = c.parent {
		if c == root {
			return true
		}
	}
	return false
}

// setFocusState notifies the callback of a focus change.
func (n *Node) setFocusState(hasFocus bool) {
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// Manager holds the primary focus for a set of nodes. It is safe for
// concurrent use and satisfies core.Listenable: listeners run after every
// change of the primary focus.
type Manager struct {
	changed *core.Notifier

	mu      sync.Mutex
	primary *Node
	nodes   []*Node
}

var defaultManager = NewManager()

// Default returns the process-wide manager used by inputs built without one.
func Default() *Manager {
	return defaultManager
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{changed: core.NewNotifier()}
}

// Add registers a node in traversal order.
func (m *Manager) Add(label string, onChange func(hasFocus bool)) *Node {
	n := &Node{Label: label, OnFocusChange: onChange, manager: m}
	m.mu.Lock()
	m.nodes = append(m.nodes, n)
	m.mu.Unlock()
	return n
}

// Primary returns the node holding primary focus, or nil.
func (m *Manager) Primary() *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.primary
}

// Len returns the number of registered nodes.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.nodes)
}

// AddListener registers fn to run after the primary focus changes and
// returns a function that removes it.
func (m *Manager) AddListener(fn func()) func() {
	return m.changed.AddListener(fn)
}

// Unfocus clears the primary focus.
func (m *Manager) Unfocus() bool {
	return m.setPrimary(nil)
}

// MoveFocus moves the primary focus by delta positions in registration
// order, wrapping at either end. Nodes that skip traversal or refuse focus
// are passed over. It reports whether focus moved.
func (m *Manager) MoveFocus(delta int) bool {
	m.mu.Lock()
	nodes := append([]*Node(nil), m.nodes...)
	current := -1
	for i, n := range nodes {
		if n == m.primary {
			current = i
			break
		}
	}
	m.mu.Unlock()

	count := len(nodes)
	if count == 0 || delta == 0 {
		return false
	}
	if current < 0 && delta < 0 {
		current = count
	}
	for step := 1; step <= count; step++ {
		candidate := nodes[wrapIndex(current+delta*step, count)]
		if candidate.SkipTraversal || !candidate.canReceiveFocus() {
			continue
		}
		return m.setPrimary(candidate)
	}
	return false
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimary updates the primary focus to node. Flags change under the
// lock; callbacks run afterwards, blurs before focuses.
func (m *Manager) setPrimary(node *Node) bool {
	m.mu.Lock()
	if m.primary == node {
		m.mu.Unlock()
		return false
	}
	before := ancestry(m.primary)
	after := ancestry(node)
	if m.primary != nil {
		m.primary.hasPrimaryFocus = false
	}
	for _, n := range before {
		n.hasFocus = false
	}
	for _, n := range after {
		n.hasFocus = true
	}
	if node != nil {
		node.hasPrimaryFocus = true
	}
	m.primary = node
	m.mu.Unlock()

	for _, n := range before {
		if !contains(after, n) {
			n.setFocusState(false)
		}
	}
	for i := len(after) - 1; i >= 0; i-- {
		if !contains(before, after[i]) {
			after[i].setFocusState(true)
		}
	}
	m.changed.Notify()
	return true
}

// ancestry returns n followed by its ancestors.
func ancestry(n *Node) []*Node {
	var chain []*Node
	for c := n; c != nil; c = c.parent {
		chain = append(chain, c)
	}
	return chain
}

func contains(nodes []*Node, n *Node) bool {
	for _, c := range nodes {
		if c == n {
			return true
		}
	}
	return false
}
