package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/au3/output"
)

// TimingCollector records a tree of wall-clock timings. It is safe for
// concurrent use; watch mode reuses one collector per run.
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode
	now     func() time.Time
}

type timerNode struct {
	name     string
	detail   string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

func (n *timerNode) duration() time.Duration {
	if n.end.IsZero() {
		return 0
	}
	return n.end.Sub(n.start)
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{now: time.Now}
}

// Start begins timing an operation.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: c.now()}

	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree. Nothing is written before the first Start.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}
	formatTimingTree(w, c.root, styles)
}

// Reset discards every recorded timing.
func (c *TimingCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.root = nil
	c.current = nil
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	c := t.collector
	c.mu.Lock()
	defer c.mu.Unlock()

	t.node.end = c.now()
	if c.current == t.node && t.node.parent != nil {
		c.current = t.node.parent
	}
}

func (t *timingTimer) Child(name string) Timer {
	c := t.collector
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: c.now(), parent: t.node}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: c, node: node}
}

func (t *timingTimer) Annotate(detail string) {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.detail = detail
}
