package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rexlang/rex"
	"github.com/rexlang/rex/dump"
)

var (
	dumpAST bool
	dumpNFA bool
	dumpOut string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <pattern>",
	Short: "Render a pattern's parsed AST or compiled NFA as Graphviz DOT",
	Example: `  rex dump "a(b|c)+" --nfa --out nfa.dot
  rex dump "a*|b" --ast --out ast.dot`,
	Args: cobra.ExactArgs(1),
	Run:  runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the parsed AST")
	dumpCmd.Flags().BoolVar(&dumpNFA, "nfa", false, "dump the compiled NFA")
	dumpCmd.Flags().StringVar(&dumpOut, "out", "", "file to write DOT text to (default: stdout)")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(_ *cobra.Command, args []string) {
	pattern := args[0]

	if dumpAST == dumpNFA {
		exitWithError("specify exactly one of --ast or --nfa")
	}

	re, err := rex.Compile(pattern)
	if err != nil {
		exitWithError("compiling %q: %v", pattern, err)
	}

	var out string
	if dumpAST {
		out = dump.AST(re.DumpAST())
	} else {
		out = dump.NFA(re.DumpNFA())
	}

	if dumpOut == "" {
		os.Stdout.WriteString(out)
		return
	}
	if err := os.WriteFile(dumpOut, []byte(out), 0o644); err != nil {
		exitWithError("writing %s: %v", dumpOut, err)
	}
}
