// Package eslint assembles a flat ESLint configuration module
// (eslint.config.mjs) and prints it as JavaScript source.
package eslint

// Expr is a JavaScript expression in the generated module.
type Expr interface {
	expr()
}

// Ident is an identifier reference, e.g. tseslint.
type Ident string

// String is a string literal.
type String string

// Member is one `key: value` property of an object literal.
type Member struct {
	Key   string
	Value Expr
}

// Object is an object literal. Members print in slice order.
type Object struct {
	Members []Member
}

// Call is a call expression.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (Ident) expr()   {}
func (String) expr()  {}
func (*Object) expr() {}
func (*Call) expr()   {}

// Import is an import declaration. Exactly one of Default or Named is set:
//
//	import <Default> from "<From>";
//	import { <Named...> } from "<From>";
type Import struct {
	Default string
	Named   []string
	From    string
}

// Module is a whole ES module: imports followed by `export default <Default>;`.
type Module struct {
	Imports []Import
	Default Expr
}
