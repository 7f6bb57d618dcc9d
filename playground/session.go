package playground

import (
	"context"
	"sync"

	"github.com/csePriyanshu/tree-visualizer/container/tree"
	"github.com/csePriyanshu/tree-visualizer/logs"
)

// State is the view of the session tree returned after every request
type State struct {
	Kind   string         `json:"kind"`
	Len    int            `json:"len"`
	Height int            `json:"height"`
	Root   *tree.Snapshot `json:"root"`
}

// Traversal is the result of walking the session tree
type Traversal struct {
	Order  string       `json:"order"`
	Visits []tree.Visit `json:"visits"`
	Values []int        `json:"values"`
}

// Session owns the tree that a playground user works on. Mutations
// take the write lock for the whole operation and reads take the
// read lock, so a reader never observes a tree in the middle of a
// rotation
type Session struct {
	mu      sync.RWMutex
	tree    *tree.Tree
	logger  logs.Logger
	metrics *Metrics
}

// SessionProps are the properties used to create a Session
type SessionProps struct {
	Kind    tree.Kind
	Logger  logs.Logger
	Metrics *Metrics
}

// NewSession creates a session with an empty tree of the provided kind
func NewSession(props SessionProps) *Session {
	if props.Logger == nil {
		panic("logger must be set")
	}

	s := &Session{
		tree:    tree.New(props.Kind, nil),
		logger:  props.Logger.ForClass("playground", "Session"),
		metrics: props.Metrics,
	}
	s.metrics.observe(props.Kind, "select", true, 0)
	return s
}

// Select replaces the session tree with an empty tree of the
// provided kind
func (s *Session) Select(ctx context.Context, kind tree.Kind) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.tree.Kind()
	s.tree = tree.New(kind, nil)

	s.logger.Info(ctx, "tree selected", logs.MapFields{
		"kind":     kind.String(),
		"previous": prev.String(),
	})
	s.metrics.observe(kind, "select", true, 0)
	return s.state()
}

// Insert adds the value to the session tree. Values that are
// already present leave the tree unchanged
func (s *Session) Insert(ctx context.Context, v int) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.tree.Insert(v)
	s.logMutation(ctx, "insert", v, changed)
	return s.state(), changed
}

// Delete removes the value from the session tree. A strict deletion
// of a value that is not present fails with tree.ErrNotFound
func (s *Session) Delete(ctx context.Context, v int, strict bool) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	var changed bool
	if strict {
		err = s.tree.Remove(v)
		changed = err == nil
	} else {
		changed = s.tree.Delete(v)
	}

	s.logMutation(ctx, "delete", v, changed)
	return s.state(), err
}

// Traverse walks the session tree in the provided order
func (s *Session) Traverse(ctx context.Context, order tree.Order) Traversal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visits := s.tree.Visits(order)
	values := make([]int, 0, len(visits))
	for _, visit := range visits {
		values = append(values, visit.Value)
	}
	if visits == nil {
		visits = []tree.Visit{}
	}

	s.logger.Debug(ctx, "tree traversed", logs.MapFields{
		"kind":  s.tree.Kind().String(),
		"order": order.String(),
		"len":   len(values),
	})
	s.metrics.observe(s.tree.Kind(), "traverse", false, s.tree.Len())
	return Traversal{Order: order.String(), Visits: visits, Values: values}
}

// Snapshot returns a copy of the structure of the session tree
func (s *Session) Snapshot() *tree.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Snapshot()
}

// State returns the current state of the session tree
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state()
}

func (s *Session) state() State {
	return State{
		Kind:   s.tree.Kind().String(),
		Len:    s.tree.Len(),
		Height: s.tree.Height(),
		Root:   s.tree.Snapshot(),
	}
}

func (s *Session) logMutation(ctx context.Context, op string, v int, changed bool) {
	s.logger.Info(ctx, "tree "+op, logs.MapFields{
		"kind":    s.tree.Kind().String(),
		"value":   v,
		"changed": changed,
		"len":     s.tree.Len(),
	})
	s.metrics.observe(s.tree.Kind(), op, changed, s.tree.Len())
}
