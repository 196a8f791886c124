// Command au3-repr dumps the functions extracted from an AutoIt file as Go
// values, for debugging the extractor.
package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/au3/parser"
)

var (
	cli struct {
		File string `help:"AutoIt file to parse." arg:"" type:"existingfile"`
	}
)

func main() {
	ctx := kong.Parse(&cli)

	raw, err := os.ReadFile(cli.File)
	ctx.FatalIfErrorf(err)

	file, err := parser.ParseFunctions(context.Background(), cli.File, raw)
	if file != nil {
		repr.Println(file.Functions)
	}
	ctx.FatalIfErrorf(err)
}
