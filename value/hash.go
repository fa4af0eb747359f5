package value

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of v. Equal values hash equally,
// except that distinct NaN payloads may collide or differ. Object entries
// are combined without regard to order.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(v.typ))

	var b [8]byte
	switch v.typ {
	case BooleanType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		h.WriteByte(byte(v.num.Type()))
		if f, ok := v.num.ToF64(); ok && v.num.IsFloat() && f == 0 {
			// 0 and -0 are equal
			h.WriteByte(0)
		} else {
			h.WriteString(v.num.String())
		}
	case StringType:
		h.WriteString(v.str)
	case DateTimeType:
		h.WriteString(v.dt.String())
	case ArrayType:
		for _, e := range v.arr {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var sum uint64
		for k, e := range v.obj.All() {
			var kh maphash.Hash
			kh.SetSeed(seed)
			kh.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			kh.Write(b[:])
			sum += kh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}
