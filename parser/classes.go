package parser

import "github.com/rexlang/rex/ast"

// foldOr combines items right-associatively: s1, s2, s3 becomes
// Or(s1, Or(s2, s3)), matching how a multi-way alternation a|b|c parses.
func foldOr(items []ast.Node) ast.Node {
	if len(items) == 1 {
		return items[0]
	}
	return &ast.Or{Left: items[0], Right: foldOr(items[1:])}
}

func lit(r rune) ast.Node {
	return &ast.Literal{Char: r}
}

func rng(lo, hi rune) ast.Node {
	return &ast.Range{Lo: lo, Hi: hi}
}

// digitClass builds the canonical alternation tree for \d: 0-9.
func digitClass() ast.Node {
	return rng('0', '9')
}

// wordClass builds the canonical alternation tree for \w:
// a-z | A-Z | 0-9 | _.
func wordClass() ast.Node {
	return foldOr([]ast.Node{rng('a', 'z'), rng('A', 'Z'), rng('0', '9'), lit('_')})
}

// verticalClass builds the canonical alternation tree for \v: any of
// \n \v \f \r \x85.
func verticalClass() ast.Node {
	return foldOr([]ast.Node{lit('\n'), lit('\v'), lit('\f'), lit('\r'), lit(rune(0x85))})
}

// horizontalClass builds the canonical alternation tree for \h: any of
// \t ' ' \xa0.
func horizontalClass() ast.Node {
	return foldOr([]ast.Node{lit('\t'), lit(' '), lit(rune(0xa0))})
}

// whitespaceClass builds the canonical alternation tree for \s: the union
// of the vertical and horizontal whitespace sets.
func whitespaceClass() ast.Node {
	return foldOr([]ast.Node{
		lit('\n'), lit('\v'), lit('\f'), lit('\r'), lit(rune(0x85)),
		lit('\t'), lit(' '), lit(rune(0xa0)),
	})
}
