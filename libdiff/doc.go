// Package libdiff computes structural differences between Values and
// applies them.
//
// A diff is itself a Value. Each node is an object with a single marker
// key:
//
//	{"!insert": v}                       v was added
//	{"!delete": v}                       v was removed
//	{"!replace": {"from": a, "to": b}}   a became b
//	{"!strdiff": "@@ -1,3 +1,3 @@..."}   textual patch of a string
//	{"!object": {"key": diff, ...}}      per-member changes
//	{"!array": [op, ...]}                edit script over elements
//
// Array edit scripts hold {"!keep": n} runs, inserts, deletes and nested
// element diffs, in order.
//
// Usage:
//
//	d, changed := libdiff.Diff(from, to)
//	back, err := libdiff.Patch(from, d) // Equal to `to`
//	undo, err := libdiff.Reverse(d)
package libdiff
