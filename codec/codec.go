package codec

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/digits/symbol"
)

// Error classes
var (
	Error      = errs.Class("codec")
	RadixError = errs.Class("codec: radix")
	SlotError  = errs.Class("codec: slots")
	IndexError = errs.Class("codec: index")
	DigitError = errs.Class("codec: digit")
)

// Radix bounds
const (
	MinRadix     = 2
	MaxRadix     = 16
	DefaultRadix = 10
)

// Schema describes a sequence format.
type Schema struct {
	Radix int
	Slots int
}

// Validate returns an error if the schema cannot be used.
func (s Schema) Validate() (err error) {
	if s.Radix < MinRadix || s.Radix > MaxRadix {
		return RadixError.New("invalid radix: %d (want %d..%d)", s.Radix, MinRadix, MaxRadix)
	}

	if s.Slots < 1 {
		return SlotError.New("invalid slot count: %d", s.Slots)
	}

	return nil
}

// Codec converts values to and from sequences of a fixed schema. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	schema Schema
	radix  *big.Int
}

// New returns a codec for the schema.
func New(schema Schema) (c *Codec, err error) {
	err = schema.Validate()
	if err != nil {
		return nil, err
	}

	return &Codec{
		schema: schema,
		radix:  big.NewInt(int64(schema.Radix)),
	}, nil
}

// Schema returns the schema of the codec.
func (c *Codec) Schema() Schema {
	return c.schema
}

// Encode returns the sequence for v. A nil v is rendered as all Blank. Digits
// that do not fit in the available slots are dropped starting from the most
// significant; the minus sign is dropped if no slot remains for it.
func (c *Codec) Encode(v *big.Int) (seq Sequence) {
	seq = make(Sequence, c.schema.Slots)

	if v == nil {
		return seq
	}

	mag := new(big.Int).Abs(v)
	digit := new(big.Int)
	index := 0

	if mag.Sign() == 0 {
		seq[0] = symbol.D0
		index++
	}

	for mag.Sign() > 0 && index < len(seq) {
		mag.QuoRem(mag, c.radix, digit)
		seq[index] = symbol.Numerals[digit.Int64()]
		index++
	}

	if v.Sign() < 0 && index < len(seq) {
		seq[index] = symbol.Minus
	}

	// Remaining slots are already Blank (the zero Symbol).

	return seq
}

// Decode returns the value of seq. Numerals are read from slot 0 upward until
// the first Minus or Blank. A Minus negates the result. If slot 0 is Blank
// there is no value and nil is returned.
func (c *Codec) Decode(seq Sequence) (v *big.Int, err error) {
	err = c.check(seq)
	if err != nil {
		return nil, err
	}

	if seq[0] == symbol.Blank {
		return nil, nil
	}

	v = new(big.Int)
	place := big.NewInt(1)
	term := new(big.Int)

	for _, s := range seq {
		d, ok := s.Value()
		if !ok {
			if s == symbol.Minus {
				v.Neg(v)
			}

			break
		}

		term.SetInt64(int64(d))
		v.Add(v, term.Mul(term, place))
		place.Mul(place, c.radix)
	}

	return v, nil
}

// Replace returns the value that results from showing s in the given slot
// of the rendering of v. A nil v is edited as if it were zero.
//
// The edited sequence is read back with every slot taken into account:
// numerals contribute their place value, Blank slots contribute zero and a
// Minus in any slot makes the result negative. For sequences produced by
// Encode this is the same as Decode. The result is never nil.
func (c *Codec) Replace(v *big.Int, slot int, s symbol.Symbol) (r *big.Int, err error) {
	if slot < 0 || slot >= c.schema.Slots {
		return nil, IndexError.New("slot %d out of range [0, %d)", slot, c.schema.Slots)
	}

	if !s.ValidFor(c.schema.Radix) {
		return nil, DigitError.New("%s not valid in radix %d", s, c.schema.Radix)
	}

	if v == nil {
		v = new(big.Int)
	}

	seq := c.Encode(v)
	seq[slot] = s

	r = new(big.Int)
	place := big.NewInt(1)
	term := new(big.Int)
	negative := false

	for _, sym := range seq {
		if d, ok := sym.Value(); ok {
			term.SetInt64(int64(d))
			r.Add(r, term.Mul(term, place))
		} else if sym == symbol.Minus {
			negative = true
		}

		place.Mul(place, c.radix)
	}

	if negative {
		r.Neg(r)
	}

	return r, nil
}

func (c *Codec) check(seq Sequence) (err error) {
	if len(seq) != c.schema.Slots {
		return Error.New("sequence length %d does not match %d slots", len(seq), c.schema.Slots)
	}

	for i, s := range seq {
		if !s.ValidFor(c.schema.Radix) {
			return DigitError.New("slot %d: %s not valid in radix %d", i, s, c.schema.Radix)
		}
	}

	return nil
}
