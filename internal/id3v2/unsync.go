package id3v2

// Desynchronize reverses ID3v2 unsynchronisation: every 0xFF 0x00 pair
// becomes a single 0xFF. The input is left untouched and a new slice is
// returned.
func Desynchronize(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i++
		}
	}
	return out
}

// Synchronize applies unsynchronisation by inserting 0x00 after every
// 0xFF. It is the inverse of Desynchronize.
func Synchronize(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/8)
	for _, b := range data {
		out = append(out, b)
		if b == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}
