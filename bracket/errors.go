package bracket

import "errors"

var (
	// ErrInvalidSlotCount indicates a slot count that is not a power of two in [2, MaxSlots].
	ErrInvalidSlotCount = errors.New("bracket: slot count must be a power of two between 2 and 65536")
	// ErrPlacementOutOfRange indicates a placement outside [0, 2*slots-2].
	ErrPlacementOutOfRange = errors.New("bracket: placement out of range")
	// ErrInvalidDirection indicates a direction other than Winner or Loser.
	ErrInvalidDirection = errors.New("bracket: direction must be winner or loser")
	// ErrMatchNotFound indicates a match ID that does not exist in the topology.
	ErrMatchNotFound = errors.New("bracket: match not found")
)
