package domain

// ReasonOK is the reason carried by an allowed verdict.
const ReasonOK = "OK"

// Verdict represents the outcome of screening a single handle.
// Pure value type, no external dependencies.
type Verdict struct {
	Allowed bool
	Reason  string // ReasonOK when allowed, otherwise the rejection reason
}

// Accept returns an allowed verdict.
func Accept() Verdict { return Verdict{Allowed: true, Reason: ReasonOK} }

// Reject returns a rejected verdict carrying the given reason.
func Reject(reason string) Verdict { return Verdict{Allowed: false, Reason: reason} }

// IsAllowed is a convenience accessor.
func (v Verdict) IsAllowed() bool { return v.Allowed }

// Status returns the short status label for this verdict, "OK" or "FLAGGED".
func (v Verdict) Status() string {
	if v.Allowed {
		return "OK"
	}
	return "FLAGGED"
}
