// Package mimc7 implements the MiMC-7 algebraic hash over the field
// implemented by pkg/field: a minimal block cipher with a single x -> x^7
// S-box, run for a fixed number of rounds with round constants derived
// deterministically from Keccak-256.
package mimc7
