//go:build windows

package helix

import "golang.org/x/sys/windows"

func openLibrary(path string) (uintptr, uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, errnoCode(err), err
	}
	return uintptr(handle), 0, nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}
