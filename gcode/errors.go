package gcode

import "errors"

// ErrIO indicates the underlying sink failed to accept a write or a
// flush. The cause is wrapped and stays inspectable via errors.Unwrap.
var ErrIO = errors.New("sink i/o failure")
