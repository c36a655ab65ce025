package dbfs

import "errors"

// Sentinel errors for dbfs package operations.
var (
	// ErrSourceOutOfRange indicates BFS was called with source >= N.
	ErrSourceOutOfRange = errors.New("dbfs: source vertex out of range")

	// ErrUnknownVariant indicates NewEngine or ParseVariant received an
	// unrecognized variant.
	ErrUnknownVariant = errors.New("dbfs: unknown variant")

	// ErrUnknownFlavor indicates NewEngine received an unrecognized Flavor.
	ErrUnknownFlavor = errors.New("dbfs: unknown flavor")

	// ErrOutLength indicates the out slice passed to Engine.BFS does not
	// have length N.
	ErrOutLength = errors.New("dbfs: out slice length must equal N")
)
