package memstore

import (
	"strings"
	"sync"
	"sync/atomic"

	"walletstate/internal/app/port"
)

type node struct {
	keys     []string
	children map[string]*node
	value    any
	leaf     bool
}

func newBranch() *node {
	return &node{children: make(map[string]*node)}
}

func (n *node) child(key string) (*node, bool) {
	if n.leaf {
		return nil, false
	}
	c, ok := n.children[key]
	return c, ok
}

func (n *node) put(key string, c *node) {
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = c
}

func (n *node) remove(key string) bool {
	if _, ok := n.children[key]; !ok {
		return false
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Store is an in-memory, insertion-ordered state tree safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	root        *node
	version     atomic.Uint64
	subsMu      sync.Mutex
	subscribers []chan struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{root: newBranch()}
}

// SplitPath flattens path segments, splitting each on dots. Empty segments are dropped.
func SplitPath(path ...string) []string {
	out := make([]string, 0, len(path)*2)
	for _, p := range path {
		for _, s := range strings.Split(p, ".") {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Get returns the leaf value or a Branch snapshot at path.
func (s *Store) Get(path ...string) (any, bool) {
	segments := SplitPath(path...)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.root
	for _, seg := range segments {
		c, ok := n.child(seg)
		if !ok {
			return nil, false
		}
		n = c
	}
	if n.leaf {
		return n.value, true
	}
	return snapshot(n), true
}

// Set stores value at path, creating intermediate branches and replacing leaves on the way.
func (s *Store) Set(path string, value any) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return
	}

	s.mu.Lock()
	s.setLocked(segments, value)
	s.mu.Unlock()

	s.changed()
}

// Update replaces the value at path with fn(current, found) atomically.
func (s *Store) Update(path string, fn func(current any, found bool) any) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return
	}

	s.mu.Lock()
	current, found := s.leafLocked(segments)
	s.setLocked(segments, fn(current, found))
	s.mu.Unlock()

	s.changed()
}

// Delete removes the node at path. It reports whether anything was removed.
func (s *Store) Delete(path ...string) bool {
	segments := SplitPath(path...)
	if len(segments) == 0 {
		return false
	}

	s.mu.Lock()
	n := s.root
	for _, seg := range segments[:len(segments)-1] {
		c, ok := n.child(seg)
		if !ok {
			s.mu.Unlock()
			return false
		}
		n = c
	}
	removed := !n.leaf && n.remove(segments[len(segments)-1])
	s.mu.Unlock()

	if removed {
		s.changed()
	}
	return removed
}

// Version is incremented by every mutation.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Subscribe returns a channel that receives a signal after mutations.
// Signals coalesce while the receiver is busy; writers never block.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subsMu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *Store) setLocked(segments []string, value any) {
	n := s.root
	for _, seg := range segments[:len(segments)-1] {
		c, ok := n.child(seg)
		if !ok || c.leaf {
			c = newBranch()
			n.put(seg, c)
		}
		n = c
	}
	n.put(segments[len(segments)-1], &node{value: value, leaf: true})
}

func (s *Store) leafLocked(segments []string) (any, bool) {
	n := s.root
	for _, seg := range segments {
		c, ok := n.child(seg)
		if !ok {
			return nil, false
		}
		n = c
	}
	if !n.leaf {
		return nil, false
	}
	return n.value, true
}

func (s *Store) changed() {
	s.version.Add(1)

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

var (
	_ port.Store          = (*Store)(nil)
	_ port.StoreWriter    = (*Store)(nil)
	_ port.ChangeNotifier = (*Store)(nil)
)
