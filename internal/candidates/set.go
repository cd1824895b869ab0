// Package candidates tracks, per unresolved cell, the set of symbols still
// consistent with the grid. Sets only shrink; no rule re-admits a symbol.
package candidates

import (
	"math/bits"

	"github.com/jonswain/sudsolve/internal/domain"
)

// Set is a bitmask of candidate symbols. Bit v-1 represents symbol v.
type Set uint16

const allNine Set = 0x1ff

// Full returns the set of all nine symbols.
func Full() Set { return allNine }

// Of builds a set from the given symbols.
func Of(vs ...domain.Symbol) Set {
	var s Set
	for _, v := range vs {
		s |= 1 << (v - 1)
	}
	return s
}

// Has reports whether v is in the set.
func (s Set) Has(v domain.Symbol) bool { return s&(1<<(v-1)) != 0 }

// Without returns s minus the symbols in excluded.
func (s Set) Without(excluded Set) Set { return s &^ excluded }

// Union returns the symbols present in either set.
func (s Set) Union(o Set) Set { return s | o }

// Count returns the number of symbols in the set.
func (s Set) Count() int { return bits.OnesCount16(uint16(s)) }

// IsEmpty reports whether no symbol remains.
func (s Set) IsEmpty() bool { return s == 0 }

// Sole returns the single remaining symbol, if the set is a singleton.
func (s Set) Sole() (domain.Symbol, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return domain.Symbol(bits.TrailingZeros16(uint16(s)) + 1), true
}

// Symbols returns the members in ascending order.
func (s Set) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, 0, s.Count())
	for v := domain.Symbol(1); v <= domain.Size; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
