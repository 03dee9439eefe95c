/*
Package keys implements the signer key codec and the cryptographic
collaborators of the authorization engine.

A signer key is a strkey-encoded string. The first character of the
encoding determines the key kind:

	G  Ed25519   a 32 byte ed25519 public key
	X  Preimage  the sha256 hash of a secret preimage
	T  PreAuthTx the hash of a pre-authorized transaction

Kinds map one to one onto strkey version bytes, so no two kinds can share
an encoding. Every key carries a 4 byte hint, the last four bytes of the
decoded payload, used to narrow candidate signers before verification.
*/
package keys
