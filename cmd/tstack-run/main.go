package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/tnames"
	"github.com/smtcore/tstack/pkg/tstack"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "tstack-run",
	Short: "A driver for the term/type construction stack.",
	Long:  "Loads a JSON push/eval script and replays it against a fresh term-stack, printing the resulting term or type.",
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("tstack-run ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [flags] script_file",
	Short: "Replay a push/eval script and report the final result.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
		if getFlag(cmd, "smtlib1") {
			runScript(args[0], tstack.RegisterSMTLIB1Dialect)
		} else {
			runScript(args[0], nil)
		}
	},
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// runScript reads file, decodes it as a push/eval script and drives a
// fresh Stack through every step. dialect, if non-nil, is applied to the
// stack's operator table after construction, swapping in the SMT-LIB 1
// argument-order variants documented in dialect.go.
func runScript(file string, dialect func(*tstack.OpTable)) {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Errorf("reading script: %v", err)
		os.Exit(2)
	}
	steps, err := parseScript(data)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	table := terms.NewTable()
	// Capacity is a sizing hint only; Register grows the table on demand.
	ops := tstack.NewOpTable(96)
	if dialect != nil {
		dialect(ops)
	}
	names := tnames.NewRegistry()
	s := tstack.New(ops, table, names)

	for i, st := range steps {
		if err := runStep(s, i, st); err != nil {
			log.Errorf("step %d failed: %v", i+1, err)
			os.Exit(1)
		}
	}

	reportResult(table, s)
}

func reportResult(table *terms.Table, s *tstack.Stack) {
	width := diagnosticWidth()
	if t := s.ResultTerm(); t != terms.NullTerm {
		printWrapped("term: "+table.Describe(t), width)
	}
	if tau := s.ResultType(); tau != terms.NullType {
		printWrapped("type: "+table.DescribeType(tau), width)
	}
}

// diagnosticWidth reports the width to wrap diagnostic output at,
// falling back to 80 columns when stdout is not a terminal (e.g. when
// piped into a file, as a script runner commonly is).
func diagnosticWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func printWrapped(line string, width int) {
	for len(line) > width {
		fmt.Println(line[:width])
		line = line[width:]
	}
	fmt.Println(line)
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("debug", "d", false, "report debug logs")
	runCmd.Flags().Bool("smtlib1", false, "use the SMT-LIB 1 dialect's opcode variants")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
