package encoder

// SetRolling switches the contiguous fast path on or off. Switching on only
// takes effect for geometries that support it.
func SetRolling(e *Encoder, on bool) { e.rolling = on && e.modulus != 0 }

// IsRolling reports whether e uses the rolling update.
func IsRolling(e *Encoder) bool { return e.rolling }

// CandidateLess exposes the (score, key, pos) order.
func CandidateLess(a, b Candidate) bool { return a.less(b) }
