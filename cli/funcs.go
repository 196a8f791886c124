package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"

	"github.com/robinvdvleuten/au3/formatter"
	"github.com/robinvdvleuten/au3/loader"
	"github.com/robinvdvleuten/au3/parser"
	"github.com/robinvdvleuten/au3/telemetry"
)

// FuncsCmd lists the functions declared in an AutoIt file.
type FuncsCmd struct {
	File          FileOrStdin `help:"AutoIt input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format        string      `help:"Output format: ${enum}." enum:"text,signature,source,json,repr" default:"text" short:"f"`
	Sort          string      `help:"Order of the listed functions: ${enum}." enum:"line,name" default:"line"`
	Indent        int         `help:"Spaces before each parameter line in the text format." default:"4"`
	NameWidth     int         `help:"Width of parameter declarations before their defaults (auto if 0)." default:"0"`
	NoLineNumbers bool        `help:"Omit the line each function starts on."`
	Watch         bool        `help:"List again whenever the file changes." short:"w"`
}

func (cmd *FuncsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	if cmd.Watch && cmd.File.IsStdin() {
		return errors.New("--watch needs a file, not stdin")
	}

	s := globals.newSession(ctx)
	defer s.close()

	err := cmd.list(s, ctx.Stdout)
	if !cmd.Watch {
		return err
	}

	printInfof(ctx.Stderr, "Watching %s for changes (Ctrl+C to stop)", pathStyle.Render(cmd.File.Filename))
	return watchFile(s.ctx, cmd.File.Filename, func() {
		_, _ = fmt.Fprintln(ctx.Stdout)
		if err := cmd.list(s, ctx.Stdout); err != nil {
			zerolog.Ctx(s.ctx).Info().Err(err).Msg("listed with errors")
		}
	})
}

// list loads the file and writes its functions in the selected format.
// Extraction problems are rendered on stderr; whatever was extracted is
// still listed.
func (cmd *FuncsCmd) list(s *session, w io.Writer) error {
	timer := telemetry.Start(s.ctx, "funcs "+cmd.File.Filename)
	defer func() {
		timer.End()
		s.flush()
	}()
	ctx := telemetry.WithTimer(s.ctx, timer)

	file, err := cmd.File.Load(ctx, loader.New())
	if file == nil {
		return err
	}

	render := timer.Child("Render " + cmd.Format)
	writeErr := cmd.write(file, w)
	render.End()
	if writeErr != nil {
		return writeErr
	}

	if err == nil {
		return nil
	}

	var list *parser.ErrorList
	if !errors.As(err, &list) {
		return err
	}

	_, _ = fmt.Fprintln(s.stderr)
	_, _ = fmt.Fprint(s.stderr, NewErrorRenderer(file.Source).RenderAll(list.Errors))
	_, _ = fmt.Fprintln(s.stderr)
	summary := fmt.Sprintf("%s in %s", english.Plural(len(list.Errors), "problem", ""), cmd.File.Filename)
	printError(s.stderr, summary)
	return NewCommandError(1, summary)
}

func (cmd *FuncsCmd) write(file *parser.File, w io.Writer) error {
	opts := []formatter.Option{
		formatter.WithIndentation(cmd.Indent),
		formatter.WithLineNumbers(!cmd.NoLineNumbers),
		formatter.WithNameWidth(cmd.NameWidth),
	}
	if cmd.Sort == "name" {
		opts = append(opts, formatter.WithOrder(formatter.OrderName))
	}
	f := formatter.New(opts...)

	switch cmd.Format {
	case "signature":
		return f.FormatSignatures(file, w)
	case "source":
		return f.FormatSource(file, w)
	case "json":
		return f.FormatJSON(file, w)
	case "repr":
		repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(f.NewJSONFile(file))
		return nil
	default:
		return f.Format(file, w)
	}
}
