// Package telemetry provides hierarchical timing collection for operations.
//
// Collectors travel through a context.Context, so instrumented code never
// needs to know whether timing is enabled:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.Start(ctx, "Load main.au3")
//	scan := timer.Child("Extract functions")
//	// ... work ...
//	scan.Annotate("12 functions")
//	scan.End()
//	timer.End()
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/au3/output"
)

type (
	collectorKey struct{}
	timerKey     struct{}
)

// Collector gathers timings for a run.
type Collector interface {
	// Start begins timing an operation. The first operation started becomes
	// the root; later ones nest under the innermost running operation.
	Start(name string) Timer

	// Report writes the collected timings as a tree. styles may be nil.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation.
type Timer interface {
	// End stops the timer.
	End()

	// Child starts a nested timer under this one.
	Child(name string) Timer

	// Annotate attaches a short detail, such as a count, shown next to the
	// operation name in the report.
	Annotate(detail string)
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, collector)
}

// FromContext extracts the collector from context. Without one it returns a
// collector that does nothing.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey{}).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithTimer makes timer the parent of operations started with Start. Use it
// when operations run concurrently, where the collector's notion of the
// current operation is ambiguous.
func WithTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, timerKey{}, timer)
}

// Start begins an operation under the timer set with WithTimer, or else
// through the collector in ctx.
func Start(ctx context.Context, name string) Timer {
	if parent, ok := ctx.Value(timerKey{}).(Timer); ok {
		return parent.Child(name)
	}
	return FromContext(ctx).Start(name)
}
