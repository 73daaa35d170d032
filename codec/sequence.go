package codec

import (
	"strings"

	"github.com/calebcase/digits/symbol"
)

// Sequence is an ordered run of slot symbols. Slot 0 is the least
// significant digit.
type Sequence []symbol.Symbol

// String returns the text form of the sequence, most significant slot first.
func (seq Sequence) String() string {
	sb := &strings.Builder{}
	sb.Grow(len(seq))

	for i := len(seq) - 1; i >= 0; i-- {
		sb.WriteRune(seq[i].Rune())
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (seq Sequence) MarshalText() (data []byte, err error) {
	return []byte(seq.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is read most
// significant slot first; each rune becomes one slot.
func (seq *Sequence) UnmarshalText(data []byte) (err error) {
	defer Error.WrapP(&err)

	rs := []rune(string(data))
	out := make(Sequence, len(rs))

	for i, r := range rs {
		out[len(rs)-1-i], err = symbol.Parse(r)
		if err != nil {
			return err
		}
	}

	*seq = out

	return nil
}
