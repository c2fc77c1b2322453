package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	perrors "jsonpolish/internal/errors"
	"jsonpolish/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var err error
	if completionRequest(args) {
		// cobra would route these to its hidden shell completion command
		err = runPolish(cmd, args)
	} else {
		err = cmd.Execute()
	}
	return report(err, stdout, stderr)
}

// completionRequest reports whether cobra treats the first argument as a
// shell completion request. Here it is an ordinary positional.
func completionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

// report prints the outcome of a run and maps it to an exit code.
func report(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var pe *perrors.PolishError
	if !errors.As(err, &pe) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case pe.ShowsUsage():
		fmt.Fprint(stdout, usageText())
	case pe.Code == perrors.VersionRequested:
		fmt.Fprintln(stdout, version.Line())
	default:
		fmt.Fprintf(stderr, "%s%s\n", pe.Prefix(), pe.Message)
	}
	return pe.ExitCode()
}
