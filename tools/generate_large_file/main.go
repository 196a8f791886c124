// Large AutoIt Script Generator
//
// This tool generates a large AutoIt script for performance testing and profiling.
// It mixes function declarations with the constructs that make scanning hard:
// line continuations, block comments, strings with doubled quotes, macros and
// object access.
//
// Usage:
//
//	go run main.go > large.au3
//	go run main.go 20000000 > large.au3  # Specify target size in bytes
//	au3 --telemetry check large.au3
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	verbs = []string{
		"Get", "Set", "Load", "Save", "Parse", "Format", "Resize",
		"Send", "Read", "Write", "Find", "Sort", "Wait", "Log",
	}

	nouns = []string{
		"Window", "Control", "Array", "File", "Registry", "Process",
		"Config", "Item", "Buffer", "Socket", "Timer", "Report",
	}

	params = []string{
		"$sTitle", "$sText", "$hWnd", "$iIndex", "$iCount", "$aItems",
		"$vValue", "$bForce", "$fRatio", "$sPath", "$oObject", "$iTimeout",
	}

	defaults = []string{
		"0", "1", "-1", "True", "False", "Default", "Null", `""`,
		"0x7FFFFFFF", "@ScriptDir", `"C:\Temp"`, "UBound($aItems) - 1",
		`'it''s'`, "(1 + 2) * 3",
	}

	macros = []string{
		"@ScriptDir", "@CRLF", "@error", "@extended", "@TempDir", "@HOUR",
	}

	builtins = []string{
		"StringLen", "StringUpper", "FileRead", "ConsoleWrite", "Sleep",
		"WinActivate", "ControlClick", "UBound", "Round", "StringFormat",
	}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	writeHeader()

	bytesWritten := 0
	functionCount := 0

	for bytesWritten < targetSize {
		// Mix functions with top-level code
		var output string
		switch rand.Intn(10) {
		case 0, 1, 2: // 30% - Simple function
			output = generateSimpleFunction(functionCount)
			functionCount++

		case 3, 4: // 20% - Function with defaults
			output = generateFunctionWithDefaults(functionCount)
			functionCount++

		case 5, 6: // 20% - Declaration split across lines
			output = generateContinuedFunction(functionCount)
			functionCount++

		case 7: // 10% - Global declarations
			output = generateGlobals()

		case 8: // 10% - Block comment
			output = generateBlockComment()

		case 9: // 10% - Top-level statements
			output = generateStatements()
		}

		fmt.Print(output)
		bytesWritten += len(output)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d functions\n", bytesWritten, functionCount)
}

func writeHeader() {
	fmt.Println("; Large AutoIt Script for Performance Testing")
	fmt.Println("; Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Println("#include-once")
	fmt.Println("#include <Array.au3>")
	fmt.Println("#include <File.au3>")
	fmt.Println("#AutoIt3Wrapper_Run_AU3Check=n")
	fmt.Println()
	fmt.Println("Opt(\"MustDeclareVars\", 1)")
	fmt.Println()
}

func functionName(n int) string {
	return fmt.Sprintf("_%s%s%d", pick(verbs), pick(nouns), n)
}

func generateSimpleFunction(n int) string {
	name := functionName(n)
	count := rand.Intn(4)
	args := make([]string, count)
	for i := range args {
		args[i] = pickParam(i)
	}

	return fmt.Sprintf(`Func %s(%s)
	Local $vResult = %s(%s)
	If @error Then Return SetError(1, 0, 0)
	Return $vResult
EndFunc   ;==>%s

`, name, strings.Join(args, ", "), pick(builtins), firstOr(args, `"x"`), name)
}

func generateFunctionWithDefaults(n int) string {
	name := functionName(n)
	count := rand.Intn(4) + 1
	args := make([]string, count)
	for i := range args {
		args[i] = pickParam(i)
		if i > 0 {
			args[i] += " = " + pick(defaults)
		}
	}
	if rand.Intn(3) == 0 {
		args[0] = "ByRef " + args[0]
	}

	return fmt.Sprintf(`Func %s(%s)
	Switch %s
		Case 0
			ConsoleWrite("zero" & @CRLF)
		Case Else
			ConsoleWrite(StringFormat("%%d items", %s) & %s)
	EndSwitch
EndFunc

`, name, strings.Join(args, ", "), paramName(args[0]), paramName(args[0]), pick(macros))
}

func generateContinuedFunction(n int) string {
	name := functionName(n)
	count := rand.Intn(3) + 2
	args := make([]string, count)
	for i := range args {
		args[i] = pickParam(i)
		if i == count-1 {
			args[i] = "Const " + args[i] + " = " + pick(defaults)
		}
	}

	return fmt.Sprintf(`Func %s( _
		%s _ ; continued
		)
	Local $oShell = ObjCreate("Shell.Application")
	$oShell.Windows().Item(0).Visible = True
	Return $oShell
EndFunc

`, name, strings.Join(args, ", _\n\t\t"))
}

func generateGlobals() string {
	return fmt.Sprintf(`Global Const $MAX_%d = %d
Global $g_sPath = %s & "\data\" & 'file''s.txt'
Global $g_aList[%d] = [0x%X, %d]

`, rand.Intn(100000), rand.Intn(1000), pick(macros), rand.Intn(20)+2, rand.Intn(4096), rand.Intn(100))
}

func generateBlockComment() string {
	// Functions inside block comments must not be extracted
	return fmt.Sprintf(`#cs
	Func Disabled%d($x)
		Return "not code"
	EndFunc
#ce

`, rand.Intn(100000))
}

func generateStatements() string {
	return fmt.Sprintf(`For $i = 1 To %d Step 2
	If Mod($i, 3) = 0 Then ContinueLoop
	%s(%s)
Next
While WinExists("Untitled")
	Sleep(%d)
WEnd

`, rand.Intn(100)+1, pick(builtins), pick(macros), rand.Intn(500))
}

// Helper functions

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

// pickParam returns a parameter name that is unique within a declaration.
func pickParam(i int) string {
	return fmt.Sprintf("%s%d", pick(params), i)
}

func paramName(arg string) string {
	fields := strings.Fields(arg)
	for _, f := range fields {
		if strings.HasPrefix(f, "$") {
			return f
		}
	}
	return arg
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
