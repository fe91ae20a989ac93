package scene

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// shared seed so hashes are stable across calls within a process run.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value.  Equal values hash equally
// within a process run, so a hash mismatch is a cheap inequality
// pre-check before a full Compare.  It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("scene: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(v.Type))

	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		if v.Int64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(*v.Int64))
			h.Write(b[:])
		} else if v.Float64 != nil {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*v.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(v.Number)
		}
	case StringType:
		h.WriteString(v.String)
	case ArrayType:
		var b [8]byte
		for _, vv := range v.Values {
			binary.LittleEndian.PutUint64(b[:], vv.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, field := range v.Fields {
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
