package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rexlang/rex"
)

var findallCmd = &cobra.Command{
	Use:     "findall <pattern> <input>",
	Short:   "Print every non-overlapping match of pattern in input",
	Example: `  rex findall "a+" "baaabaa"`,
	Args:    cobra.ExactArgs(2),
	Run:     runFindAll,
}

func init() {
	rootCmd.AddCommand(findallCmd)
}

func runFindAll(_ *cobra.Command, args []string) {
	pattern, input := args[0], args[1]

	re, err := rex.Compile(pattern)
	if err != nil {
		exitWithError("compiling %q: %v", pattern, err)
	}

	matches := re.FindAll(input)
	if len(matches) == 0 {
		fmt.Println(failureText("no matches"))
		return
	}
	for _, m := range matches {
		g, _ := m.Group(0)
		fmt.Println(highlight(g))
	}
}
