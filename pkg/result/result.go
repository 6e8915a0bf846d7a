// Package result provides the Outcome value returned by every mutating
// scaffold operation: either a success diagnostic or a failure diagnostic,
// never both.
package result

import "github.com/haliatech/sassy/pkg/messages"

// Outcome holds the result of one operation. The zero value is valid and
// means "nothing happened yet". Setting one side clears the other
// (last-write-wins, not accumulating).
type Outcome struct {
	ok  *messages.Diagnostic
	err *messages.Diagnostic
}

// Success returns an Outcome carrying a success diagnostic.
func Success(d *messages.Diagnostic) Outcome {
	var o Outcome
	o.SetOk(d)
	return o
}

// Failure returns an Outcome carrying a failure diagnostic.
func Failure(d *messages.Diagnostic) Outcome {
	var o Outcome
	o.SetErr(d)
	return o
}

// SetOk stores a success diagnostic, clearing any prior failure.
// A nil diagnostic is ignored.
func (o *Outcome) SetOk(d *messages.Diagnostic) {
	if d != nil {
		o.ok = d
		o.err = nil
	}
}

// SetErr stores a failure diagnostic, clearing any prior success.
// A nil diagnostic is ignored.
func (o *Outcome) SetErr(d *messages.Diagnostic) {
	if d != nil {
		o.err = d
		o.ok = nil
	}
}

// Ok reports the success diagnostic, or nil.
func (o Outcome) Ok() *messages.Diagnostic { return o.ok }

// Err reports the failure diagnostic, or nil.
func (o Outcome) Err() *messages.Diagnostic { return o.err }

// Failed reports whether the Outcome carries a failure.
func (o Outcome) Failed() bool { return o.err != nil }

// Diagnostic returns whichever diagnostic is populated, preferring
// success. Nil for the zero value.
func (o Outcome) Diagnostic() *messages.Diagnostic {
	if o.ok != nil {
		return o.ok
	}
	return o.err
}

// String prefers the success payload, falling back to the failure one.
func (o Outcome) String() string {
	if d := o.Diagnostic(); d != nil {
		return d.String()
	}
	return ""
}
