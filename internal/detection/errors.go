package detection

import "errors"

// ErrInvalidInput reports malformed input: an empty or ragged grid, a
// negative delta, or a negative angle epsilon.
var ErrInvalidInput = errors.New("invalid input")

// ErrClassifier reports that a caller-supplied classifier panicked while
// evaluating a pixel value. The panic value is included in the wrapped
// message.
var ErrClassifier = errors.New("classifier failure")
