// Command rex is a small CLI over the rex package: compile a pattern and
// match, search, or list all matches against an input string, or dump its
// parsed AST / compiled NFA as Graphviz DOT.
package main

import "github.com/rexlang/rex/cmd/rex/cmd"

func main() {
	cmd.Execute()
}
