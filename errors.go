package bitnum

import "github.com/zeebo/errs"

// Error is the class every error returned by this package belongs to.
var Error = errs.Class("bitnum")

// Error classes for the individual failure conditions. Test for them with
// Has, e.g. DivisionByZero.Has(err).
var (
	MalformedInput = errs.Class("malformed input")
	DivisionByZero = errs.Class("division by zero")
	InvalidWidth   = errs.Class("invalid width")
)
