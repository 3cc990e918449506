package propagate

// Outcome is the result of an extraction. It either keeps the extracted
// payload K or holds the alternate A, which is usually the original enum
// value handed back unchanged.
type Outcome[K, A any] struct {
	kept K
	alt  A
	ok   bool
}

// Keep creates an outcome keeping k.
func Keep[K, A any](k K) Outcome[K, A] {
	return Outcome[K, A]{kept: k, ok: true}
}

// Alternate creates an outcome holding the alternate a.
func Alternate[K, A any](a A) Outcome[K, A] {
	return Outcome[K, A]{alt: a}
}

// IsKept reports whether the outcome keeps a payload.
func (o Outcome[K, A]) IsKept() bool { return o.ok }

// Get returns the kept payload. ok is false for an alternate outcome.
func (o Outcome[K, A]) Get() (k K, ok bool) { return o.kept, o.ok }

// Alt returns the alternate. ok is false for a kept outcome.
func (o Outcome[K, A]) Alt() (a A, ok bool) { return o.alt, !o.ok }

// Or returns the kept payload or the fallback.
func (o Outcome[K, A]) Or(fallback K) K {
	if o.ok {
		return o.kept
	}
	return fallback
}

// OrElse returns the kept payload or maps the alternate with f.
func (o Outcome[K, A]) OrElse(f func(A) K) K {
	if o.ok {
		return o.kept
	}
	return f(o.alt)
}
