// Package eval evaluates expr-lang expressions against Value
// environments.
//
// The members of an object environment become variables. Besides the
// expr-lang builtins, expressions may call:
//
//	kind(x)      the Value type name of x, such as "Number"
//	number(s)    s parsed as a number
//	isnull(x)    whether x is null
//	get(path)    the environment member at a dotted path, e.g. get("a.b.0")
//	parse(s)     s parsed as JSON or YAML
//	getenv(name) an OS environment variable
//
// ExpandString substitutes $[expr] in text.
package eval
