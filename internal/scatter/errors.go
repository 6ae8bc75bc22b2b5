package scatter

import "errors"

var (
	// ErrLengthMismatch is returned when node and mesh lists differ in length.
	ErrLengthMismatch = errors.New("node and mesh counts differ")
	// ErrMissingPrimitive is returned for a mesh without primitives.
	ErrMissingPrimitive = errors.New("mesh has no primitives")
	// ErrGeometryNotFound is returned when a node name has no indexed geometry.
	ErrGeometryNotFound = errors.New("geometry not found for node name")
	// ErrAlreadyPlaced is returned by a second Scene.Build.
	ErrAlreadyPlaced = errors.New("scene already placed")
)
