package parser

// DropReason names a unit of micro-data discarded by a lenient parse.
type DropReason string

const (
	// DropInvalidToken is a punch token that is not "HH:MM".
	DropInvalidToken DropReason = "invalid_token"
	// DropUnpairedPunch is the trailing punch of an odd-length cell.
	DropUnpairedPunch DropReason = "unpaired_punch"
	// DropNoIntervals is a non-empty cell that produced no interval.
	DropNoIntervals DropReason = "no_intervals"
	// DropInvalidDate is a header day that does not exist in the period's month.
	DropInvalidDate DropReason = "invalid_date"
)

// Drop describes one discarded unit.
type Drop struct {
	Reason DropReason
	Row    int
	Col    int
	// Token is the offending text, when there is one.
	Token string
}

// PunchPolicy decides what happens to malformed punch data. The zero value
// is the lenient policy: bad tokens and unpaired punches are dropped
// silently and the parse goes on.
type PunchPolicy struct {
	// Strict turns invalid tokens and unpaired punches into a *PunchError.
	Strict bool
	// OnDrop, when set, is called for every unit dropped under the lenient
	// policy. It does not change what is parsed.
	OnDrop func(Drop)
}

// LenientPunchPolicy drops malformed tokens and unpaired trailing punches.
func LenientPunchPolicy() PunchPolicy {
	return PunchPolicy{}
}

// StrictPunchPolicy fails on the first malformed token or unpaired punch.
func StrictPunchPolicy() PunchPolicy {
	return PunchPolicy{Strict: true}
}

// WithDropHook returns a copy of p reporting drops to fn.
func (p PunchPolicy) WithDropHook(fn func(Drop)) PunchPolicy {
	p.OnDrop = fn
	return p
}

func (p PunchPolicy) drop(d Drop) {
	if p.OnDrop != nil {
		p.OnDrop(d)
	}
}
