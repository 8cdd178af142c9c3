package encoding

import (
	"encoding/binary"
	"math"
)

// FromBytes64 turns []byte (len 8) into a float64
func FromBytes64(data []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(data))
}

// ToBytes64 turns a float64 into []byte len 8
func ToBytes64(in float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(in))
	return buf
}

// FromBytes32 turns []byte (len 4) into uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// FromBytes8 turns a []byte into a uint8.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// ToBytes8 turns uint8 into []byte of len 1
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}
