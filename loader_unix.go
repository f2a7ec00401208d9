//go:build darwin || linux || freebsd

package helix

import "github.com/ebitengine/purego"

// openLibrary loads a shared object with eager symbol resolution. All
// references are resolved at load time, so a missing transitive dependency
// fails here rather than on the first native call.
func openLibrary(path string) (uintptr, uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, errnoCode(err), err
	}
	return handle, 0, nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
