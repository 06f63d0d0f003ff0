package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/checklist/internal/ui"
)

// UsageError is a bad invocation: wrong arguments, unknown list or item.
// It exits with code 2.
type UsageError struct {
	Msg  string
	Hint string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, version string) int {
	return run(args, version, os.Stdout, os.Stderr)
}

func run(args []string, version string, stdout, stderr io.Writer) int {
	return runApp(newApp(version), args, stdout, stderr)
}

func runApp(a *app, args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return ExitCode(root.Execute(), stderr)
}

// ExitCode reports err and maps it to an exit code.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue *UsageError
	if errors.As(err, &ue) {
		if ue.Hint != "" {
			fmt.Fprintln(stderr, ui.C("\033[90m", "Hint: "+ue.Hint))
		}
		return 2
	}
	return 1
}
