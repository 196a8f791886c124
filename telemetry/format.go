package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/au3/output"
)

// slowThreshold marks operations highlighted as slow in the report.
const slowThreshold = 100 * time.Millisecond

// formatTimingTree writes the tree rooted at root:
//
//	Total: 3.2ms
//	├─ Load main.au3 (48 KB): 2.9ms
//	│  └─ Extract functions (112 functions): 2.7ms
//	└─ Render: 240µs
func formatTimingTree(w io.Writer, root *timerNode, styles *output.Styles) {
	name := label(root)
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, formatDuration(root.duration()))

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	d := node.duration()
	tree, timing := prefix+branch, formatDuration(d)
	if styles != nil {
		tree = styles.Dim(tree)
		if d >= slowThreshold {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", tree, label(node), timing)

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1, styles)
	}
}

func label(n *timerNode) string {
	if n.detail == "" {
		return n.name
	}
	return n.name + " (" + n.detail + ")"
}

// formatDuration shows µs below a millisecond, ms below a second, else s.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
