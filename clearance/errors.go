package clearance

import "errors"

// ErrInvalidDimension indicates rows < 1 or cols < 1 at construction.
var ErrInvalidDimension = errors.New("clearance: rows and cols must each be >= 1")

// Invalid is the sentinel value ValAt returns for an out-of-bounds cell.
const Invalid = -1.0
