package codec

import "github.com/zeebo/errs"

// Error is the class every error returned by this package belongs to.
var Error = errs.Class("codec")

// TooLarge is returned when a number does not fit the schema width or a block
// declares more data than the decoder accepts.
var TooLarge = errs.Class("too large")
