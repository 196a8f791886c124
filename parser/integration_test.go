package parser

import (
	"context"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestKitchensink(t *testing.T) {
	data, err := os.ReadFile("../testdata/kitchensink.au3")
	assert.NoError(t, err)

	file, err := ParseFunctions(context.Background(), "kitchensink.au3", data)
	assert.NoError(t, err)

	var names []string
	for _, fn := range file.Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"_Add", "_Resize", "_Log", "_Dispatch", "_Wait", "_WithObject", "_lowercase"}, names)

	log := file.Function("_log")
	assert.Equal(t, 4, len(log.Params))
	assert.Equal(t, `@ScriptName & ": "`, log.Params[1].DefaultText(data))
	assert.Equal(t, "True", log.Params[3].DefaultText(data))

	wait := file.Function("_Wait")
	assert.Equal(t, "-1", wait.Params[0].DefaultText(data))
	assert.Equal(t, "Null", wait.Params[1].DefaultText(data))

	// Lossless: the token texts rebuild the file
	var rebuilt []byte
	for _, tok := range NewScanner(data).ScanAll() {
		assert.NotEqual(t, Error, tok.Kind, "token at %s", tok.Pos("kitchensink.au3"))
		rebuilt = append(rebuilt, tok.Bytes(data)...)
	}
	assert.Equal(t, string(data), string(rebuilt))
}
