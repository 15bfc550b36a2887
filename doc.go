// Package bitnum provides an unsigned binary number of arbitrary width.
//
// A Number is a plain sequence of bits, most significant first. Every
// operator is carried out on that sequence directly (column sums and carries,
// shift-and-add, long division) rather than on native integers, so the width
// is bounded only by memory.
//
// Widths
//
// Width is part of a Number's identity but not of its value. Comparison
// ignores leading zeros, while the result width of each operator is fixed:
//
//  | Operator | Result width                                 |
//  |----------|----------------------------------------------|
//  | Add      | max(wa, wb), +1 on carry out                 |
//  | Sub      | wa                                           |
//  | Mul      | grows with the partial products              |
//  | Div      | wa (0 when a < b)                            |
//  | Mod      | wa (a's width when a < b)                    |
//  | Lsh      | wa + s                                       |
//  | Rsh      | wa                                           |
//  | And, Or  | max(wa, wb)                                  |
//  | Not      | wa                                           |
//  |----------|----------------------------------------------|
//
// Subtraction
//
// Sub negates the subtrahend in two's complement one bit wider than the wider
// operand, adds, and keeps the low wa bits. Subtracting a larger value does
// not fail; it wraps around modulo 2^wa:
//
//  0011 - 0101 = 1110   (3 - 5 = 14 mod 16)
//
// Display
//
// String pads on the left to a nibble boundary and separates nibbles with a
// space. The zero-width Number prints as a single zero nibble:
//
//  | Number        | String      |
//  |---------------|-------------|
//  | FromUint64(0) | 0000        |
//  | Parse("101")  | 0101        |
//  | FromUint64(42)| 0010 1010   |
//  |---------------|-------------|
package bitnum
