package merged

import "errors"

// Sentinel errors for merged package operations.
var (
	// ErrCapacityExceeded indicates N (parents flavor), or N or the largest
	// out-degree (distances flavor), exceeds the payload width of a merged
	// cell — see MaxVerticesParents and MaxDegreeDistances.
	ErrCapacityExceeded = errors.New("merged: graph exceeds merged-cell payload capacity")

	// ErrUnknownFlavor indicates Build was called with an unrecognized Flavor.
	ErrUnknownFlavor = errors.New("merged: unknown flavor")
)
