package spath

import "errors"

// ErrUnreachableSink is returned by Path, and by Tree.PathTo, when the
// destination is not reachable from the source in the current graph (under
// the current Length values — a node can become unreachable only if the
// underlying topology never connected it; lengths changing never removes
// reachability since every positive-capacity edge keeps a finite length).
var ErrUnreachableSink = errors.New("spath: sink unreachable from source")

// ErrEmptySource is returned when src is the empty string.
var ErrEmptySource = errors.New("spath: source is empty")
