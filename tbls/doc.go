// Package tbls implements (t,n)-threshold BLS signatures over BLS12-381
// with a trusted dealer.
//
// A dealer samples a random polynomial of degree t-1 and gives receiver i
// the evaluation at i+1 as its secret key share. Any t holders can sign a
// message independently; a collector combines their signature shares by
// Lagrange interpolation in G1. The result is exactly the signature that
// the constant term of the polynomial would have produced, and it
// verifies against the first public coefficient. The combined secret is
// never reconstructed.
//
// # Dealing
//
//	s, _ := seed.FromReader(rand.Reader)
//	defer s.Zeroize()
//	pc, shares, err := tbls.GenerateThresholdKey(s, 2, 3)
//
// [ThresholdShareSecretKey] reshares an existing secret instead of
// drawing a new one.
//
// # Signing and combining
//
//	sig0, _ := tbls.SignMessage(msg, shares[0])
//	sig2, _ := tbls.SignMessage(msg, shares[2])
//	combined, err := tbls.CombineSignatures([]group.Point{sig0, nil, sig2}, 2)
//
// # Verifying
//
//	err := tbls.VerifyIndividualSig(msg, sig0, tbls.IndividualPublicKey(pc, 0))
//	err = tbls.VerifyCombinedSig(msg, combined, tbls.CombinedPublicKey(pc))
//
// Signatures are in G1 (48 bytes compressed) and public keys in G2
// (96 bytes compressed), hashed with the IETF ciphersuite
// BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_.
//
// # Concurrency
//
// Every function is a pure transformation of its arguments. Independent
// calls may run concurrently without coordination.
package tbls
