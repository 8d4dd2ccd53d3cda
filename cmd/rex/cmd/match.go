package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rexlang/rex"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>",
	Short: "Match a pattern against input, anchored at the start",
	Example: `  rex match "a(b|c)+" "abcc"
  rex match "(a)\1" "aa"`,
	Args: cobra.ExactArgs(2),
	Run:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, args []string) {
	pattern, input := args[0], args[1]

	re, err := rex.Compile(pattern)
	if err != nil {
		exitWithError("compiling %q: %v", pattern, err)
	}

	m, ok := re.Match(input)
	if !ok {
		fmt.Println(failureText("no match"))
		return
	}
	printMatch(re, m)
}

func printMatch(re *rex.Regex, m *rex.Match) {
	group0, _ := m.Group(0)
	fmt.Println(highlight(group0))

	for k := 1; k <= re.NumGroups(); k++ {
		g, ok := m.Group(k)
		if !ok {
			fmt.Printf("  group %d: <no match>\n", k)
			continue
		}
		fmt.Printf("  group %d: %q\n", k, g)
	}
}
