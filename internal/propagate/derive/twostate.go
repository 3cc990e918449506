package derive

import "bytes"

// TwoStateEligible reports whether an enum behaves as a binary result: exactly
// one good group and one bad group, exactly two variants, and the tables
// differ. A variant carrying both markers makes the tables equal.
func TwoStateEligible(good, bad []*Group, variants []*Variant, goodTable, badTable []byte) bool {
	if len(good) != 1 || len(bad) != 1 {
		return false
	}
	if len(variants) != 2 {
		return false
	}
	return !bytes.Equal(goodTable, badTable)
}
