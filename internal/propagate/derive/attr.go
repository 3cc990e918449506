package derive

import (
	"github.com/sublee/propagate/internal/codefmt"
)

// MaxTuple is the largest number of fields a marked variant may have. The
// runtime package declares Tuple2 to Tuple8.
const MaxTuple = 8

// HasMarker reports whether the variant carries the marker. Only presence
// matters.
func HasMarker(v *Variant, m Marker) bool {
	return v.Markers&m != 0
}

// ValidateShape checks whether the field shape of a marked variant can be
// carried as a payload. Named fields are never grouped into a payload type.
func ValidateShape(decl *Decl, v *Variant) error {
	switch v.Kind {
	case Named:
		return codefmt.Errorf(decl, v, "named struct cannot carry this attribute: variant %s of %s has named fields; remove the %s marker or the field names", v.Name(), decl.Name(), v.Markers)
	case Tuple:
		if len(v.Fields) > MaxTuple {
			return codefmt.Errorf(decl, v, "variant %s of %s has %d fields; marked variants can have at most %d fields", v.Name(), decl.Name(), len(v.Fields), MaxTuple)
		}
	}
	return nil
}
