// Package codec writes and reads bitnum numbers as BSV data control blocks.
//
// Every number is written as a single field holding its significant bits,
// big-endian. Leading zeros are not stored; the Schema decides the width a
// number is given back when it is read.
//
// Control Block
//
// The first byte of a field selects the block type by prefix. Bits left blank
// below are data (or, for the sized types, the size minus one).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                  |
//  |---------------|---------------||----------------|----------------------------------|
//  | 1 |                           || Data           | up to 7 bits                     |
//  | 0 . 1 |                       || Data Size      | up to 2^6 = 64 bytes             |
//  | 0 . 0 . 1 |                   || Data + 1       | up to 5+8 = 13 bits              |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | up to 4+8+8 = 20 bits            |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | up to 2^3 = 8 size bytes         |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | zero-width number                |
//  |---------------|---------------||----------------|----------------------------------|
//
// Examples
//
// 5 (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 0 . 0 . 0 . 0 . 1 . 0 . 1 | Data Control Block with value of 5.
//  |---------------|---------------|
//
// 8191 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 1 . 1 . 1 . 1 . 1 | Data + 1 Control Block with value of 8191.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 |
//  |---------------|---------------|
//
// 2^20 (4 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 1 . 0 | Data Size Control Block with 3 bytes.
//  | 0 . 0 . 0 . 1 . 0 . 0 . 0 . 0 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 |
//  |---------------|---------------|
package codec
