// Package shape holds pure structural predicates over single syntax nodes.
// Every predicate returns false for nil or unexpected shapes.
package shape

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// functionKinds are the node kinds that carry params and a body.
var functionKinds = []string{
	estree.KindFunctionDeclaration,
	estree.KindFunctionExpression,
	estree.KindArrowFunctionExpression,
}

// wrapperKinds are the transparent expression layers Unwrap strips.
var wrapperKinds = []string{
	estree.KindParenthesizedExpression,
	estree.KindChainExpression,
	estree.KindAwaitExpression,
	estree.KindTSNonNullExpression,
}

// IsFunction reports whether n is a function declaration, function
// expression or arrow function.
func IsFunction(n *estree.Node) bool {
	return n.Is(functionKinds...)
}

// FunctionBody returns the block body of a function, or nil when n is not a
// function or its body is an expression.
func FunctionBody(n *estree.Node) *estree.Node {
	if !IsFunction(n) {
		return nil
	}
	body := n.Child("body")
	if !body.Is(estree.KindBlockStatement) {
		return nil
	}
	return body
}

// IsExport reports whether n is any export statement.
func IsExport(n *estree.Node) bool {
	return n.Is(
		estree.KindExportNamedDeclaration,
		estree.KindExportDefaultDeclaration,
		estree.KindExportAllDeclaration,
		estree.KindTSExportAssignment,
	)
}

// Unwrap strips parentheses, optional chains, await and non-null assertions.
func Unwrap(n *estree.Node) *estree.Node {
	for n.Is(wrapperKinds...) {
		if n.Type == estree.KindAwaitExpression {
			n = n.Child("argument")
		} else {
			n = n.Child("expression")
		}
	}
	return n
}

// UnwrapParens strips parenthesized grouping, which preserveParens output
// keeps as ParenthesizedExpression nodes.
func UnwrapParens(n *estree.Node) *estree.Node {
	for n.Is(estree.KindParenthesizedExpression) {
		n = n.Child("expression")
	}
	return n
}

// unwrapAccess is Unwrap without the await layer.
func unwrapAccess(n *estree.Node) *estree.Node {
	for n.Is(estree.KindParenthesizedExpression, estree.KindChainExpression, estree.KindTSNonNullExpression) {
		n = n.Child("expression")
	}
	return n
}

// soleStatement returns the only statement of a block, or nil.
func soleStatement(block *estree.Node) *estree.Node {
	body := block.Body()
	if len(body) != 1 {
		return nil
	}
	return body[0]
}

// IsEarlyExit reports whether n is a return or throw, or a block whose only
// statement is an early exit.
func IsEarlyExit(n *estree.Node) bool {
	switch {
	case n.Is(estree.KindReturnStatement, estree.KindThrowStatement):
		return true
	case n.Is(estree.KindBlockStatement):
		return IsEarlyExit(soleStatement(n))
	default:
		return false
	}
}

// IsNegated reports whether n is a logical negation.
func IsNegated(n *estree.Node) bool {
	return n.Is(estree.KindUnaryExpression) && n.String("operator") == "!"
}

// IsWrapperConditional reports whether a function body consists of a single
// if statement without an else branch. The guard shape `if (!x) return;` is
// exempt.
func IsWrapperConditional(body *estree.Node) bool {
	stmt := soleStatement(body)
	if !stmt.Is(estree.KindIfStatement) || stmt.Child("alternate") != nil {
		return false
	}
	return !IsNegated(stmt.Child("test")) || !IsEarlyExit(stmt.Child("consequent"))
}

// IsPassThroughCall reports whether a function only forwards its parameters,
// in order, to a single call.
func IsPassThroughCall(fn *estree.Node) bool {
	stmt := soleStatement(FunctionBody(fn))
	var expr *estree.Node
	switch {
	case stmt.Is(estree.KindExpressionStatement):
		expr = stmt.Child("expression")
	case stmt.Is(estree.KindReturnStatement):
		expr = stmt.Child("argument")
	default:
		return false
	}

	call := Unwrap(expr)
	if !call.Is(estree.KindCallExpression) {
		return false
	}

	names, rest, ok := paramNames(fn.List("params"))
	if !ok {
		return false
	}
	args := call.List("arguments")
	want := len(names)
	if rest != "" {
		want++
	}
	if len(args) != want {
		return false
	}
	for i, name := range names {
		if args[i].Name() != name || !args[i].Is(estree.KindIdentifier) {
			return false
		}
	}
	if rest != "" {
		last := args[len(args)-1]
		if !last.Is(estree.KindSpreadElement) || last.Child("argument").Name() != rest {
			return false
		}
	}
	return true
}

// paramNames returns the plain parameter names and the trailing rest name.
// ok is false when any parameter is a pattern, has a default, or a rest
// element is not last.
func paramNames(params []*estree.Node) (names []string, rest string, ok bool) {
	for i, p := range params {
		switch {
		case p.Is(estree.KindIdentifier):
			names = append(names, p.Name())
		case p.Is(estree.KindRestElement) && i == len(params)-1:
			arg := p.Child("argument")
			if !arg.Is(estree.KindIdentifier) {
				return nil, "", false
			}
			rest = arg.Name()
		default:
			return nil, "", false
		}
	}
	return names, rest, true
}

// IsPrimitiveLiteral reports whether n is an inert constant: a string,
// number, boolean, null or bigint literal; +, - or ~ applied to a number;
// ! applied to a boolean; or a template with no substitutions.
func IsPrimitiveLiteral(n *estree.Node) bool {
	switch {
	case n.Is(estree.KindLiteral):
		return literalKind(n) != ""
	case n.Is(estree.KindUnaryExpression):
		arg := n.Child("argument")
		switch n.String("operator") {
		case "+", "-", "~":
			return literalKind(arg) == "number" || literalKind(arg) == "bigint"
		case "!":
			return literalKind(arg) == "boolean"
		}
		return false
	case n.Is(estree.KindTemplateLiteral):
		return len(n.List("expressions")) == 0
	default:
		return false
	}
}

// literalKind classifies a Literal node's value. Regular expressions and
// unknown literals yield "".
func literalKind(n *estree.Node) string {
	if !n.Is(estree.KindLiteral) || n.Has("regex") {
		return ""
	}
	if n.Has("bigint") {
		return "bigint"
	}
	v, ok := n.Value("value")
	if !ok {
		return ""
	}
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		if n.String("raw") == "null" {
			return "null"
		}
	}
	return ""
}

// IsAlias reports whether n, after stripping grouping and optional access,
// is a bare name or a member access.
func IsAlias(n *estree.Node) bool {
	return unwrapAccess(n).Is(estree.KindIdentifier, estree.KindMemberExpression)
}
