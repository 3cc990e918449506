package propagate

// Tuple types carry the fields of a multi-field variant as one payload. A
// variant with a single field of a tuple type is indistinguishable from a
// variant with the tuple's fields, so both cannot be marked with the same
// outcome.

// Tuple2 is a tuple of 2 values.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Unpack returns the values of the tuple.
func (t Tuple2[A, B]) Unpack() (A, B) { return t.V0, t.V1 }

// NewTuple2 creates a [Tuple2].
func NewTuple2[A, B any](v0 A, v1 B) Tuple2[A, B] {
	return Tuple2[A, B]{v0, v1}
}

// Tuple3 is a tuple of 3 values.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Unpack returns the values of the tuple.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) { return t.V0, t.V1, t.V2 }

// NewTuple3 creates a [Tuple3].
func NewTuple3[A, B, C any](v0 A, v1 B, v2 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{v0, v1, v2}
}

// Tuple4 is a tuple of 4 values.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Unpack returns the values of the tuple.
func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) { return t.V0, t.V1, t.V2, t.V3 }

// NewTuple4 creates a [Tuple4].
func NewTuple4[A, B, C, D any](v0 A, v1 B, v2 C, v3 D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{v0, v1, v2, v3}
}

// Tuple5 is a tuple of 5 values.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// Unpack returns the values of the tuple.
func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) { return t.V0, t.V1, t.V2, t.V3, t.V4 }

// NewTuple5 creates a [Tuple5].
func NewTuple5[A, B, C, D, E any](v0 A, v1 B, v2 C, v3 D, v4 E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{v0, v1, v2, v3, v4}
}

// Tuple6 is a tuple of 6 values.
type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

// Unpack returns the values of the tuple.
func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) { return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5 }

// NewTuple6 creates a [Tuple6].
func NewTuple6[A, B, C, D, E, F any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{v0, v1, v2, v3, v4, v5}
}

// Tuple7 is a tuple of 7 values.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// Unpack returns the values of the tuple.
func (t Tuple7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) { return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6 }

// NewTuple7 creates a [Tuple7].
func NewTuple7[A, B, C, D, E, F, G any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{v0, v1, v2, v3, v4, v5, v6}
}

// Tuple8 is a tuple of 8 values.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// Unpack returns the values of the tuple.
func (t Tuple8[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H) { return t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7 }

// NewTuple8 creates a [Tuple8].
func NewTuple8[A, B, C, D, E, F, G, H any](v0 A, v1 B, v2 C, v3 D, v4 E, v5 F, v6 G, v7 H) Tuple8[A, B, C, D, E, F, G, H] {
	return Tuple8[A, B, C, D, E, F, G, H]{v0, v1, v2, v3, v4, v5, v6, v7}
}
