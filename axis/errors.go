package axis

import "errors"

// ErrBadRange indicates an unparsable range expression, an empty or
// reversed span, or a non-positive interval.
var ErrBadRange = errors.New("axis: invalid range")
