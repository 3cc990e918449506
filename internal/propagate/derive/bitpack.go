package derive

// Pack packs bits into bytes, least significant bit first. Bit i is stored in
// byte i/8 at position i%8. The result has ceil(len(bits)/8) bytes.
func Pack(bits []bool) []byte {
	packed := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed
}

// Bit reads bit i of a packed table.
func Bit(packed []byte, i int) bool {
	return packed[i/8]>>(i%8)&1 != 0
}
