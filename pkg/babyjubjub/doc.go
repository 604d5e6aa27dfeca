// Package babyjubjub implements the Baby Jubjub twisted Edwards curve:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2   (mod p)
//
// over the field implemented by pkg/field, with a=168700, d=168696. The
// full group has order 8*l where l is prime; EdDSA operates in the
// prime-order subgroup generated by Base.
package babyjubjub
