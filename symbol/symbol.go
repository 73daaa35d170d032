package symbol

import (
	"github.com/zeebo/errs"
)

// Error is the error class for symbol lookups.
var Error = errs.Class("symbol")

type kind uint8

const (
	blank kind = iota
	numeral
	minus
)

// Symbol is a single digit slot symbol. The zero value is Blank.
type Symbol struct {
	kind  kind
	value uint8
}

// IsNumeral returns true if the symbol is one of D0 through DF.
func (s Symbol) IsNumeral() bool {
	return s.kind == numeral
}

// Value returns the numeric value of a numeral. Minus and Blank have no value.
func (s Symbol) Value() (v int, ok bool) {
	if s.kind != numeral {
		return 0, false
	}

	return int(s.value), true
}

// ValidFor returns true if the symbol may appear in a sequence of the given
// radix.
func (s Symbol) ValidFor(radix int) bool {
	if s.kind != numeral {
		return true
	}

	return int(s.value) < radix
}

// Rune returns the display form of the symbol.
func (s Symbol) Rune() rune {
	switch s.kind {
	case numeral:
		return rune(alphabet[s.value])
	case minus:
		return '-'
	}

	return ' '
}

func (s Symbol) String() string {
	switch s.kind {
	case minus:
		return "minus"
	case blank:
		return "blank"
	}

	return string(s.Rune())
}

const alphabet = "0123456789ABCDEF"

// Symbols
var (
	D0 = Symbol{numeral, 0x0}
	D1 = Symbol{numeral, 0x1}
	D2 = Symbol{numeral, 0x2}
	D3 = Symbol{numeral, 0x3}
	D4 = Symbol{numeral, 0x4}
	D5 = Symbol{numeral, 0x5}
	D6 = Symbol{numeral, 0x6}
	D7 = Symbol{numeral, 0x7}
	D8 = Symbol{numeral, 0x8}
	D9 = Symbol{numeral, 0x9}
	DA = Symbol{numeral, 0xA}
	DB = Symbol{numeral, 0xB}
	DC = Symbol{numeral, 0xC}
	DD = Symbol{numeral, 0xD}
	DE = Symbol{numeral, 0xE}
	DF = Symbol{numeral, 0xF}

	Minus = Symbol{kind: minus}
	Blank = Symbol{}

	Numerals = [16]Symbol{
		D0, D1, D2, D3, D4, D5, D6, D7,
		D8, D9, DA, DB, DC, DD, DE, DF,
	}

	Symbols = symbols{
		D0, D1, D2, D3, D4, D5, D6, D7,
		D8, D9, DA, DB, DC, DD, DE, DF,
		Minus,
		Blank,
	}
)

type symbols []Symbol

// Match returns the symbol displayed as r. Lowercase letters match their
// uppercase numerals.
func (ss symbols) Match(r rune) (s Symbol, ok bool) {
	if r >= 'a' && r <= 'f' {
		r -= 'a' - 'A'
	}

	for _, s := range ss {
		if s.Rune() == r {
			return s, true
		}
	}

	return s, false
}

// Numeral returns the numeral symbol for v.
func Numeral(v int) (s Symbol, err error) {
	if v < 0 || v >= len(Numerals) {
		return Blank, Error.New("invalid numeral: %d", v)
	}

	return Numerals[v], nil
}

// Parse returns the symbol for the rune r.
func Parse(r rune) (s Symbol, err error) {
	s, ok := Symbols.Match(r)
	if !ok {
		return Blank, Error.New("invalid symbol: %q", r)
	}

	return s, nil
}
