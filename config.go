package helix

// ContextProfile selects which kind of rendering context the graphics
// component creates.
type ContextProfile int

const (
	// ProfileCore requests a core-profile desktop context.
	ProfileCore ContextProfile = iota
	// ProfileCompatibility requests a compatibility-profile desktop context.
	ProfileCompatibility
	// ProfileES requests an OpenGL ES context.
	ProfileES
)

func (p ContextProfile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	case ProfileES:
		return "es"
	default:
		return "unknown"
	}
}

// ContextConfig describes the rendering context requested from the
// helix-graphics component. The zero value is not a usable configuration;
// start from DefaultContextConfig and override fields as needed.
type ContextConfig struct {
	MajorVersion int
	MinorVersion int
	Profile      ContextProfile

	// Framebuffer channel depths, in bits.
	RedBits     int
	GreenBits   int
	BlueBits    int
	AlphaBits   int
	DepthBits   int
	StencilBits int

	// Samples is the MSAA sample count. 0 disables multisampling.
	Samples int

	// SRGBCapable requests an sRGB-capable default framebuffer.
	SRGBCapable bool

	// Debug requests a debug context with native-side validation enabled.
	Debug bool

	// SwapInterval is the number of vertical blanks to wait between buffer
	// swaps. 1 is vsync, 0 uncapped.
	SwapInterval int
}

// DefaultContextConfig returns the configuration the engine assumes when
// the caller does not override anything: a 3.3 core context with a
// 32-bit color buffer, 24/8 depth-stencil, and vsync on.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		MajorVersion: 3,
		MinorVersion: 3,
		Profile:      ProfileCore,
		RedBits:      8,
		GreenBits:    8,
		BlueBits:     8,
		AlphaBits:    8,
		DepthBits:    24,
		StencilBits:  8,
		SwapInterval: 1,
	}
}

// WindowConfig describes the window the helix-window component creates.
type WindowConfig struct {
	Title string

	// X and Y position the window on screen. Negative values let the
	// native windowing system choose.
	X, Y int

	Width  int
	Height int

	Resizable   bool
	Decorated   bool
	Fullscreen  bool
	AlwaysOnTop bool

	// Size constraints enforced by the native window. 0 means
	// unconstrained.
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

// DefaultWindowConfig returns a resizable, decorated 1280x720 window
// positioned by the windowing system.
func DefaultWindowConfig(title string) WindowConfig {
	return WindowConfig{
		Title:     title,
		X:         -1,
		Y:         -1,
		Width:     1280,
		Height:    720,
		Resizable: true,
		Decorated: true,
	}
}
