// Package dilithium implements the core of the Dilithium (Round-3)
// post-quantum digital signature scheme: key generation, signing, and
// verification over a Module-LWE/Module-SIS lattice. It does not pick
// a parameter set for the caller — build one with NewParams or one of
// ParamsMode2/ParamsMode3/ParamsMode5 and pass it to every call.
package dilithium
