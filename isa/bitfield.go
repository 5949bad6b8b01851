package isa

// BitField selects an inclusive range of bit positions [Lo, Hi] within a
// 32-bit word, bit 0 being least significant. Fields are fixed at compile
// time and must not overlap.
type BitField struct {
	Lo uint
	Hi uint
}

// The instruction word fields, high order to low order.
var (
	FieldReserved = BitField{31, 31}
	FieldOpCode   = BitField{26, 30}
	FieldCond     = BitField{22, 25}
	FieldTarget   = BitField{18, 21}
	FieldSrc1     = BitField{14, 17}
	FieldSrc2     = BitField{10, 13}
	FieldOffset   = BitField{0, 9}
)

// Width returns the number of bits the field spans.
func (bf BitField) Width() uint {
	return bf.Hi - bf.Lo + 1
}

// Mask returns the field's bits, set, in word position.
func (bf BitField) Mask() uint32 {
	return ((uint32(1) << bf.Width()) - 1) << bf.Lo
}

// Extract returns the field's bits from word, right justified.
func (bf BitField) Extract(word uint32) uint32 {
	return (word & bf.Mask()) >> bf.Lo
}

// ExtractSigned returns the field's bits from word, sign extended from the
// field's top bit.
func (bf BitField) ExtractSigned(word uint32) int32 {
	shift := 32 - bf.Width()
	return int32(bf.Extract(word)<<shift) >> shift
}

// Insert returns word with the field replaced by value. Value bits wider
// than the field are truncated; all bits outside the field are preserved.
func (bf BitField) Insert(value int32, word uint32) uint32 {
	return (word &^ bf.Mask()) | ((uint32(value) << bf.Lo) & bf.Mask())
}
