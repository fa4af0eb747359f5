// Package gomap converts between Go values and value.Value by reflection.
//
// ToValue maps Go types to the Value of matching kind: int8 becomes an
// i8 number, int an i64, structs become objects with fields in
// declaration order. Struct fields are named by the `valu` tag, falling
// back to `json`:
//
//	type Config struct {
//		Name  string `valu:"name"`
//		Port  uint16 `valu:"port,omitempty"`
//		Debug bool   `valu:"-"`
//	}
//
// FromValue goes the other way. Numbers must hold the destination's
// exact kind unless AllowNumericConversion is given.
package gomap
