/*
Package quorum implements weighted, multi account, multi threshold signature
authorization for ledger transactions.

An account declares three thresholds (low, medium, high) and a list of
signers, each contributing an integer weight. Every operation of a
transaction selects a threshold category on its source account; the
transaction is authorized only when, for every touched account, the weights
of the matched signatures meet the resolved threshold.

The engine is a set of pure package level functions over caller supplied
snapshots:

	ResolveThresholds   the weight bar every account must clear
	BuildRegistry       the hint indexed signer catalog of one key kind
	MatchSignature      attribute one signature to a cataloged signer
	IsApproved          the complete authorization verdict
	RejectionThresholds spare weight before approval becomes impossible

Nothing is retained between calls and nothing is read from or written to a
store; the caller provides account snapshots and collects the verdict. The
one side effect is documented on ResolveThresholds: threshold fields of the
supplied snapshots are mutated during a single evaluation, so snapshots are
reused across evaluations only through Account.Copy.
*/
package quorum
