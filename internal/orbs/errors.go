package orbs

import "errors"

var (
	// ErrEmptyFamily is returned when a theme color family has no shades.
	ErrEmptyFamily = errors.New("orbs: color family has no shades")
	// ErrInvalidHex is returned for colors that are not six hex digits with an optional '#'.
	ErrInvalidHex = errors.New("orbs: invalid hex color")
	// ErrInvalidAlpha is returned when an alpha value falls outside [0, 1].
	ErrInvalidAlpha = errors.New("orbs: alpha out of range")
	// ErrInvalidCount is returned when fewer than one orb is requested.
	ErrInvalidCount = errors.New("orbs: requested count must be positive")
)
