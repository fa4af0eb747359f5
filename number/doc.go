// Package number provides Number, a tagged numeric value holding exactly
// one of twelve kinds: signed and unsigned integers of 8, 16, 32, 64 and
// 128 bits, and 32 or 64 bit floats.
//
// # Kinds
//
// A Number is created empty, populated by one setter or constructor and
// read back through typed getters. The safe getters (I8, U64, F32, ...)
// report false on a kind mismatch; the Must getters panic.
//
//	n := number.FromU8(42)
//	v, ok := n.ToI64() // 42, true
//
// Setters replace the whole Number, so a value can never hold more than
// one kind. Clean empties a Number explicitly.
//
// # Text
//
// Parse classifies text by trying kinds in a fixed order (i32, f64, i8,
// i16, i64, i128, u8, u16, u32, u64, u128, f32); the first kind that
// accepts the text wins. String renders the canonical decimal form.
//
// # Canonical Conversions
//
// ToI64, ToU64 and ToF64 convert across kinds and fail when the target
// cannot hold the value.
package number
