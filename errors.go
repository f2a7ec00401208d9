package helix

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrUnknownComponent is returned when the requested name is not one of
	// the engine's native components.
	ErrUnknownComponent = errors.New("unknown native component")

	// ErrNotFound is returned when no candidate library exists anywhere
	// between the search root and the filesystem root.
	ErrNotFound = errors.New("native library not found")

	// ErrUnsupportedPlatform is returned when the running OS has no known
	// native file layout.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNotLoaded is returned by Symbol and Bind when the component has not
	// been loaded in this process.
	ErrNotLoaded = errors.New("native component not loaded")
)

// LoadError reports a library that was found and staged but rejected by the
// OS loader: a missing transitive dependency, an architecture mismatch, a
// corrupt binary, or a permission problem.
type LoadError struct {
	Component string
	Path      string
	Code      uintptr // platform last-error code, 0 when the platform reports none
	Err       error
}

func (e *LoadError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("loading %s from %s: %v (code %d)", e.Component, e.Path, e.Err, e.Code)
	}
	return fmt.Sprintf("loading %s from %s: %v", e.Component, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// errnoCode extracts a numeric platform code from a loader error when one
// is present. dlerror reports a message rather than a code, so on unix the
// result is often zero and the message itself is the diagnostic.
func errnoCode(err error) uintptr {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uintptr(errno)
	}
	return 0
}
