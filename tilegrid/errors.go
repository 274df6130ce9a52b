package tilegrid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("tilegrid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("tilegrid: coordinate out of bounds")
	// ErrInvalidBlockChance indicates a block probability outside [0, 1].
	ErrInvalidBlockChance = errors.New("tilegrid: block chance must be within [0, 1]")
	// ErrInvalidZoom indicates a NaN or infinite noise zoom.
	ErrInvalidZoom = errors.New("tilegrid: noise zoom must be finite")
)
