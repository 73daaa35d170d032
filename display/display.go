package display

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/digits/codec"
	"github.com/calebcase/digits/symbol"
)

// Error is the error class for display configuration.
var Error = errs.Class("display")

// DefaultSlots is the slot count used when Config.Slots is zero.
const DefaultSlots = 20

// Acceptor decides whether an edited value may replace the current one.
type Acceptor interface {
	ShouldAccept(candidate *big.Int) bool
}

// AcceptorFunc adapts a function to the Acceptor interface.
type AcceptorFunc func(candidate *big.Int) bool

// ShouldAccept calls f(candidate).
func (f AcceptorFunc) ShouldAccept(candidate *big.Int) bool {
	return f(candidate)
}

// Renderer receives the sequence to show whenever the value or radix changes.
type Renderer interface {
	Render(seq codec.Sequence)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(seq codec.Sequence)

// Render calls f(seq).
func (f RendererFunc) Render(seq codec.Sequence) {
	f(seq)
}

// Config for a display.
type Config struct {
	// Slots is the number of digit slots. Zero means DefaultSlots.
	Slots int

	// Radix of the shown digits. Zero means codec.DefaultRadix.
	Radix int

	// AllowEdits enables Edit. When false every edit is refused.
	AllowEdits bool

	// Acceptor is asked about every edit. A nil Acceptor refuses all
	// edits.
	Acceptor Acceptor

	// Renderer is optional.
	Renderer Renderer
}

// Display holds the authoritative value behind a row of digit slots. It is
// not safe for concurrent use.
type Display struct {
	codec *codec.Codec
	value *big.Int

	allowEdits bool
	acceptor   Acceptor
	renderer   Renderer
}

// New returns a display with no value.
func New(cfg Config) (d *Display, err error) {
	defer Error.WrapP(&err)

	if cfg.Slots == 0 {
		cfg.Slots = DefaultSlots
	}

	if cfg.Radix == 0 {
		cfg.Radix = codec.DefaultRadix
	}

	c, err := codec.New(codec.Schema{
		Radix: cfg.Radix,
		Slots: cfg.Slots,
	})
	if err != nil {
		return nil, err
	}

	d = &Display{
		codec:      c,
		allowEdits: cfg.AllowEdits,
		acceptor:   cfg.Acceptor,
		renderer:   cfg.Renderer,
	}
	d.render()

	return d, nil
}

// Slots returns the number of slots.
func (d *Display) Slots() int {
	return d.codec.Schema().Slots
}

// Radix returns the current radix.
func (d *Display) Radix() int {
	return d.codec.Schema().Radix
}

// Value returns a copy of the current value or nil if there is none.
func (d *Display) Value() *big.Int {
	if d.value == nil {
		return nil
	}

	return new(big.Int).Set(d.value)
}

// SetValue replaces the current value. A nil v clears it.
func (d *Display) SetValue(v *big.Int) {
	if v != nil {
		v = new(big.Int).Set(v)
	}

	d.value = v
	d.render()
}

// Reset sets the value to zero.
func (d *Display) Reset() {
	d.SetValue(new(big.Int))
}

// SetRadix changes the radix. An invalid radix is refused and the display
// is left as it was.
func (d *Display) SetRadix(radix int) (err error) {
	defer Error.WrapP(&err)

	c, err := codec.New(codec.Schema{
		Radix: radix,
		Slots: d.Slots(),
	})
	if err != nil {
		return err
	}

	d.codec = c
	d.render()

	return nil
}

// SetAllowEdits enables or disables Edit.
func (d *Display) SetAllowEdits(allow bool) {
	d.allowEdits = allow
}

// Digits returns the sequence for the current value and radix.
func (d *Display) Digits() codec.Sequence {
	return d.codec.Encode(d.value)
}

// Edit applies a user change of one slot. The resulting value is offered to
// the acceptor and only committed if it agrees. Accepted reports whether the
// value was committed. An error is returned for a slot outside the display
// or a numeral the radix does not allow; the value is unchanged in that case.
func (d *Display) Edit(slot int, s symbol.Symbol) (accepted bool, err error) {
	candidate, err := d.codec.Replace(d.value, slot, s)
	if err != nil {
		return false, err
	}

	if !d.allowEdits || d.acceptor == nil {
		return false, nil
	}

	if !d.acceptor.ShouldAccept(new(big.Int).Set(candidate)) {
		return false, nil
	}

	d.value = candidate
	d.render()

	return true, nil
}

func (d *Display) render() {
	if d.renderer == nil {
		return
	}

	d.renderer.Render(d.Digits())
}
