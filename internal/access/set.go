package access

import "math/bits"

// capability is implemented by the enumerations of this package only. The
// unexported method keeps foreign types (and raw integers) out of Set.
type capability interface {
	~uint64
	known() uint64
}

// Set is a bitset over a single flag type. Sets of different flag types
// cannot be combined, so a Group can never end up in a Permissions value.
type Set[F capability] struct {
	bits uint64
}

// SetOf builds a set holding the given flags.
func SetOf[F capability](flags ...F) Set[F] {
	var s Set[F]
	for _, f := range flags {
		s.bits |= uint64(f)
	}
	return s
}

// FromBits decodes a stored bitmask. Bits that do not belong to F are dropped.
func FromBits[F capability](raw uint64) Set[F] {
	var zero F
	return Set[F]{bits: raw & zero.known()}
}

// Has reports whether every bit of f is held.
func (s Set[F]) Has(f F) bool {
	return f != 0 && s.bits&uint64(f) == uint64(f)
}

// HasAny reports whether s and o share at least one bit.
func (s Set[F]) HasAny(o Set[F]) bool {
	return s.bits&o.bits != 0
}

// HasAll reports whether every bit of o is held by s.
func (s Set[F]) HasAll(o Set[F]) bool {
	return s.bits&o.bits == o.bits
}

func (s Set[F]) With(flags ...F) Set[F] {
	return s.Union(SetOf(flags...))
}

func (s Set[F]) Without(flags ...F) Set[F] {
	return Set[F]{bits: s.bits &^ SetOf(flags...).bits}
}

func (s Set[F]) Union(o Set[F]) Set[F] {
	return Set[F]{bits: s.bits | o.bits}
}

func (s Set[F]) IsZero() bool { return s.bits == 0 }

// Bits returns the raw mask for storage.
func (s Set[F]) Bits() uint64 { return s.bits }

// Len returns the number of flags held.
func (s Set[F]) Len() int { return bits.OnesCount64(s.bits) }

// Flags lists the held flags in ascending bit order.
func (s Set[F]) Flags() []F {
	out := make([]F, 0, s.Len())
	for rest := s.bits; rest != 0; rest &= rest - 1 {
		out = append(out, F(rest&-rest))
	}
	return out
}
