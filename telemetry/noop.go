package telemetry

import (
	"io"

	"github.com/robinvdvleuten/au3/output"
)

// noOpCollector is used when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }

func (noOpCollector) Report(io.Writer, *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(string) Timer { return noOpTimer{} }

func (noOpTimer) Annotate(string) {}
