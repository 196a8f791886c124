package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	LogLevel  string `help:"Level of diagnostic logs written to stderr." enum:"debug,info,warn,error" default:"warn"`
}

type Commands struct {
	Globals

	Funcs  FuncsCmd  `cmd:"" help:"List the functions declared in an AutoIt file."`
	Check  CheckCmd  `cmd:"" help:"Report lexical and structural errors in AutoIt files."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging AutoIt files."`
}
