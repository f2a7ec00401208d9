package helix

import "fmt"

// target describes the platform-specific half of a candidate path: the
// runtime triplet directory and the shared-library extension.
type target struct {
	triplet string
	ext     string
}

var targets = map[string]target{
	"windows": {"win-x64", ".dll"},
	"darwin":  {"os-x64", ".dylib"},
	"linux":   {"linux-x64", ".so"},
	"freebsd": {"linux-x64", ".so"},
}

// platformTarget maps a GOOS value to the native file layout the engine
// ships for it. Unix-likes other than darwin share the linux-x64 layout.
func platformTarget(goos string) (target, error) {
	t, ok := targets[goos]
	if !ok {
		return target{}, fmt.Errorf("%w: GOOS=%s", ErrUnsupportedPlatform, goos)
	}
	return t, nil
}
