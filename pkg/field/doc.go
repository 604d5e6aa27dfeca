// Package field implements arithmetic over the residue class ring modulo
// the BN254 scalar field prime
//
//	p = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// which is also the base field of the Baby Jubjub twisted Edwards curve.
// Every Element is kept canonical (fully reduced, non-negative); no
// constructor or operation can produce a value outside [0, p).
package field
