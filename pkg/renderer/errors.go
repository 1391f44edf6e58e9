package renderer

import "errors"

// Errors returned by CameraBuilder.Build, possibly joined
var (
	ErrMissingLocation       = errors.New("camera location is not set")
	ErrMissingDirection      = errors.New("camera direction is not set")
	ErrMissingRayTracer      = errors.New("camera ray tracer is not set")
	ErrNotOrthogonal         = errors.New("camera direction vectors are not orthogonal")
	ErrNonPositiveSize       = errors.New("view plane size must be positive")
	ErrNonPositiveDistance   = errors.New("distance must be positive")
	ErrNonPositiveResolution = errors.New("resolution must be positive")
	ErrInvalidThreads        = errors.New("thread count must be -2, -1, 0 or positive")
	ErrInvalidPrintInterval  = errors.New("print interval must not be negative")
)
