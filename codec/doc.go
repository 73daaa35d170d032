// Package codec converts optional signed integers to and from fixed length
// digit sequences.
//
// Sequence Layout
//
// A sequence has exactly Slots entries. Slot 0 holds the least significant
// digit and each following slot is one place more significant. This diagram
// shows -0x2F encoded with 6 slots in radix 16 (text form on the right, most
// significant slot first):
//
//  | 5 | 4 | 3 | 2 | 1 | 0 || Text     |
//  |---|---|---|---|---|---||----------|
//  |   |   |   | - | 2 | F || "   -2F" |
//
// Encoding rules:
//
//  1. No value (nil) is all Blank.
//  2. Zero is D0 in slot 0 and Blank everywhere else.
//  3. Otherwise the magnitude is written from slot 0 upward, one numeral per
//     slot, until it is exhausted or the slots run out. Digits beyond the last
//     slot are dropped without error.
//  4. A negative value places Minus in the slot right after the last numeral
//     if that slot exists.
//  5. All remaining slots are Blank.
//
// Decode is the inverse for sequences of this shape: numerals are read from
// slot 0 until the first Minus or Blank. A sequence whose slot 0 is Blank has
// no value.
//
// Editing
//
// Replace substitutes a single slot in the rendering of a value and returns
// the value the edited sequence denotes. It does not change any state. The
// caller decides whether to keep the result (see package display).
//
// The radix is fixed when the Codec is created. A radix outside [2, 16] is
// rejected by New and is never clamped.
package codec
