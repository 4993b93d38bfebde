package ot

// Option is a value which may be absent. Fonts and configurations leave many
// fields unset; an Option keeps "unset" apart from a zero value, e.g. an
// italic angle of 0 in the CFF top dict from no italic angle at all.
//
// Repair code usually combines Map and Or to fall back to what a font
// already has:
//
//	pos = ot.Map(cfgPos, toInt16).Or(post.UnderlinePosition)
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr is None for a nil pointer and Some of the pointee otherwise.
// Decoded YAML leaves absent keys as nil pointers.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value and panics for None.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic("option: unwrap of None")
	}
	return o.value
}

// Or returns the value, or def for None.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Map applies f to the value of o. f is not called for None, so it need not
// handle absent values.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}
