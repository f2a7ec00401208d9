// Package helix is the Go host side of the Helix native media engine. It
// locates the engine's native components under a runtimes/<triplet>/native
// directory tree, stages them next to the running executable, and loads
// them into the process.
package helix

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
)

// Native components shipped with the engine. Load accepts exactly these
// names, case-sensitive, with no extension.
const (
	LibAudio    = "helix-audio"
	LibGraphics = "helix-graphics"
	LibSystem   = "helix-system"
	LibWindow   = "helix-window"
)

var knownComponents = []string{LibAudio, LibGraphics, LibSystem, LibWindow}

// NativeDirEnv names an environment variable that, when set, is probed for
// the component before the upward directory walk.
const NativeDirEnv = "HELIX_NATIVE_DIR"

// maxWalkDepth bounds the upward walk in case path cleaning ever fails to
// converge on a fixed point.
const maxWalkDepth = 64

// Seams for tests: real dlopen cannot run against fixture files, and the
// test binary's directory is not a meaningful staging target.
var (
	osExecutable = os.Executable
	openNative   = openLibrary
	lookupNative = lookupSymbol
)

var (
	libMu   sync.Mutex
	handles = map[string]uintptr{}
)

func isKnownComponent(name string) bool {
	for _, c := range knownComponents {
		if c == name {
			return true
		}
	}
	return false
}

// Load resolves, stages, and loads the named native component into the
// process.
//
// origin identifies the module asking for the library: a plain filesystem
// path, a file:// URI, or empty to use the running executable's own
// location. Only its directory matters — it seeds an upward search for a
// runtimes/<triplet>/native tree, so both "installed next to the
// executable" and "running from a nested build output directory" layouts
// resolve without configuration.
//
// The component and any sibling support libraries are copied next to the
// executable before loading; files already present there are left
// untouched. The loaded handle belongs to the OS loader for the lifetime
// of the process and is never unloaded.
func Load(origin, name string) error {
	if !isKnownComponent(name) {
		return fmt.Errorf("%w: %q (valid names: %s)",
			ErrUnknownComponent, name, strings.Join(knownComponents, ", "))
	}
	t, err := platformTarget(runtime.GOOS)
	if err != nil {
		return err
	}

	root, err := searchRoot(origin)
	if err != nil {
		return err
	}
	src, err := resolveNative(root, t, name)
	if err != nil {
		return err
	}

	destDir, err := executableDir()
	if err != nil {
		return err
	}
	staged, err := stageNative(src, destDir)
	if err != nil {
		return err
	}

	logger().Debug("loading native component", "component", name, "path", staged)
	handle, code, err := openNative(staged)
	if err != nil || handle == 0 {
		if err == nil {
			err = errors.New("loader returned a null handle")
		}
		return &LoadError{Component: name, Path: staged, Code: code, Err: err}
	}

	libMu.Lock()
	handles[name] = handle
	libMu.Unlock()
	return nil
}

// Symbol resolves a symbol address from a previously loaded component.
func Symbol(component, symbol string) (uintptr, error) {
	libMu.Lock()
	handle, ok := handles[component]
	libMu.Unlock()
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotLoaded, component)
	}
	return lookupNative(handle, symbol)
}

// Bind registers a Go function pointer against a native symbol exported by
// a loaded component. fptr must be a pointer to a function variable with a
// signature matching the native entry point.
func Bind(fptr any, component, symbol string) error {
	addr, err := Symbol(component, symbol)
	if err != nil {
		return err
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// searchRoot derives the directory the upward walk starts from.
func searchRoot(origin string) (string, error) {
	if origin == "" {
		exe, err := osExecutable()
		if err != nil {
			return "", fmt.Errorf("locating executable: %w", err)
		}
		origin = exe
	}
	return filepath.Dir(originPath(origin)), nil
}

// originPath turns a module location into a plain filesystem path. Hosts
// hand these around in two URI shapes besides bare paths: file:///C:/x or
// file:///app/x (local roots) and file://host/share/x (UNC).
func originPath(origin string) string {
	switch {
	case strings.HasPrefix(origin, "file:///"):
		p := origin[len("file:///"):]
		if len(p) > 1 && p[1] == ':' {
			origin = p
		} else {
			origin = "/" + p
		}
	case strings.HasPrefix(origin, "file://"):
		origin = `\\` + origin[len("file://"):]
	}
	return filepath.FromSlash(origin)
}

// resolveNative walks from root toward the filesystem root looking for
// runtimes/<triplet>/native/<name><ext>. The walk terminates when a parent
// step no longer changes the directory, i.e. at C:\ or /.
func resolveNative(root string, t target, name string) (string, error) {
	file := name + t.ext
	if dir := os.Getenv(NativeDirEnv); dir != "" {
		candidate := filepath.Join(dir, file)
		if isRegularFile(candidate) {
			logger().Debug("resolved native component from override",
				"component", name, "path", candidate)
			return candidate, nil
		}
	}

	dir := filepath.Clean(root)
	for i := 0; i < maxWalkDepth; i++ {
		candidate := filepath.Join(dir, "runtimes", t.triplet, "native", file)
		if isRegularFile(candidate) {
			logger().Debug("resolved native component", "component", name, "path", candidate)
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: %s under %s", ErrNotFound, file, root)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func executableDir() (string, error) {
	exe, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// stageNative copies the resolved library next to the running executable,
// along with every sibling file in the same native directory that is not
// itself a component — codec, crypto, and data files the component needs
// at load time. Returns the staged path of the primary library.
func stageNative(src, destDir string) (string, error) {
	srcDir, primary := filepath.Split(src)
	dest := filepath.Join(destDir, primary)
	copied, err := copyIfAbsent(src, dest)
	if err != nil {
		return "", err
	}
	if !copied {
		// A previous load already staged this component and its
		// dependencies; load directly from the destination.
		return dest, nil
	}

	siblings, err := os.ReadDir(srcDir)
	if err != nil {
		return "", fmt.Errorf("reading native directory %s: %w", srcDir, err)
	}
	for _, entry := range siblings {
		if entry.IsDir() || entry.Name() == primary {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if isKnownComponent(base) {
			continue
		}
		_, err := copyIfAbsent(filepath.Join(srcDir, entry.Name()), filepath.Join(destDir, entry.Name()))
		if err != nil {
			return "", err
		}
	}
	return dest, nil
}

// copyIfAbsent copies src to dest unless dest already exists, reporting
// whether a copy was made. A concurrent caller may win the O_EXCL race;
// the file is present either way, so a lost race counts as success.
func copyIfAbsent(src, dest string) (bool, error) {
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o755)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("staging %s: %w", dest, err)
	}
	in, err := os.Open(src)
	if err != nil {
		out.Close()
		os.Remove(dest)
		return false, fmt.Errorf("staging %s: %w", dest, err)
	}
	defer in.Close()
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return false, fmt.Errorf("staging %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("staging %s: %w", dest, err)
	}
	logger().Debug("staged native file", "src", src, "dest", dest)
	return true, nil
}
