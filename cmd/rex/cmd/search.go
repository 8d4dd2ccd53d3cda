package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rexlang/rex"
)

var searchFrom int

var searchCmd = &cobra.Command{
	Use:   "search <pattern> <input>",
	Short: "Find the first match anywhere in input",
	Example: `  rex search "cd" "abcdef"
  rex search --from 3 "a" "aaaa"`,
	Args: cobra.ExactArgs(2),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchFrom, "from", 0, "rune offset to start searching from")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) {
	pattern, input := args[0], args[1]

	re, err := rex.Compile(pattern)
	if err != nil {
		exitWithError("compiling %q: %v", pattern, err)
	}

	m, ok := re.Search(input, searchFrom)
	if !ok {
		fmt.Println(failureText("no match"))
		return
	}
	printMatch(re, m)
}
