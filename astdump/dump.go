/*
 * OSLC
 *
 * OSL front-end compiler. Adapted from the ECAL AST pretty-printer.
 */

// Package astdump renders token streams and AST trees as plain text,
// for the --print-tokens / --print-ast driver flags.
package astdump

import (
	"fmt"
	"strings"

	"devt.de/krotik/common/stringutil"

	"github.com/krotik/oslc/ast"
	"github.com/krotik/oslc/lexer"
)

/*
Tokens renders a token slice, one token per line, in lexical order.
*/
func Tokens(tokens []lexer.Token) string {
	var buf strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&buf, "%d:%d: %s\n", t.Line, t.Column, t.String())
	}
	return buf.String()
}

/*
Tree renders a pre-order dump of an AST, indenting each level by one
more copy of the given indent string.
*/
func Tree(root *ast.Node, indent string) string {
	if root == nil {
		return ""
	}
	return root.LevelString(0, indent)
}

/*
Node renders a single node without descending into its children, using
the same rolling-indent construction the tree dump uses.
*/
func Node(n *ast.Node, level int, indent string) string {
	if n == nil {
		return ""
	}
	return stringutil.GenerateRollingString(indent, level*len(indent)) + n.String()
}
