// Package value provides Value, a dynamically typed tagged union of null,
// undefined, boolean, number, string, array, object and date-time.
//
// # Values
//
// A Value is built with one of the From constructors and inspected with
// the Is and As methods. The zero Value is Null.
//
//	obj := value.ObjectOf(
//		value.KeyVal{Key: "name", Val: value.FromString("valu")},
//		value.KeyVal{Key: "size", Val: value.FromNumeric(int32(3))},
//	)
//	v := value.FromObject(obj)
//
// Numbers are number.Number values and keep their exact kind. Objects
// keep keys in insertion order; inserting an existing key replaces its
// value in place.
//
// Values are treated as immutable. Clone returns a deep copy for callers
// that need to modify a value without affecting other holders.
//
// # Order and Equality
//
// Equal is structural and ignores object key order. Compare is a
// partial order: only values of the same type are comparable, and two
// objects are comparable only when they are equal.
//
// # Conversion
//
// ToValueBehavior converts native data to a Value and never fails.
// FromValueFunc converts back and reports false on any mismatch. Scalar
// conversions such as AsI32 require the exact numeric kind. SliceOf,
// MapOf and OptionalOf build conversions for composite types; DecodeSlice
// and DecodeMap report the failing element, and MustSliceOf and MustMapOf
// panic on it.
package value
