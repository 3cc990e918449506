package derive

// BuildTable builds the classification table of the marker. Bit i is set iff
// the i-th variant carries the marker, regardless of grouping.
func BuildTable(variants []*Variant, m Marker) []byte {
	bits := make([]bool, len(variants))
	for i, v := range variants {
		bits[i] = HasMarker(v, m)
	}
	return Pack(bits)
}
