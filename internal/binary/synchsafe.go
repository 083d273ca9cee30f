package binary

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes n as a 4-byte synchsafe integer.
// Bits above MaxSynchsafe are dropped.
func EncodeSynchsafe(n uint32) [4]byte {
	return [4]byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// Uint24 decodes a 3-byte big-endian integer, as used by ID3v2.2 frame sizes.
func Uint24(b []byte) uint32 {
	if len(b) != 3 {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
