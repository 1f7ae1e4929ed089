package parallel

import "errors"

// ErrClosed is reported for jobs handed to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")
