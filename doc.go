// Package decimal implements the three IEEE 754-2019 decimal interchange
// formats, decimal32, decimal64 and decimal128, using the binary integer
// significand (BID) encoding: bit-exact packed construction and extraction,
// shortest-round-trip text formatting and parsing, and the frexp10/ldexp10
// normalization layer that ties the two together.
//
// The package is pure and allocation-free on its core paths: every
// operation is a function of its inputs and the ambient rounding mode
// (see SetRoundingMode), never of any state the package itself retains.
package decimal
