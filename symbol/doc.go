// Package symbol provides the closed set of digit slot symbols.
//
// A slot shows either a numeral or one of two reserved symbols:
//
//  | Symbol    | Rune       | Value |
//  |-----------|------------|-------|
//  | D0 .. D9  | '0' .. '9' | 0..9  |
//  | DA .. DF  | 'A' .. 'F' | 10..15|
//  | Minus     | '-'        | none  |
//  | Blank     | ' '        | none  |
//
// Minus and Blank never take part in arithmetic. Whether a numeral is usable
// depends on the radix of the sequence it appears in (see ValidFor).
package symbol
