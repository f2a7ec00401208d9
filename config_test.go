package helix

import "testing"

func TestDefaultContextConfig(t *testing.T) {
	c := DefaultContextConfig()
	if c.MajorVersion != 3 || c.MinorVersion != 3 {
		t.Errorf("default context version = %d.%d, want 3.3", c.MajorVersion, c.MinorVersion)
	}
	if c.Profile != ProfileCore {
		t.Errorf("default profile = %v, want core", c.Profile)
	}
	if c.DepthBits != 24 || c.StencilBits != 8 {
		t.Errorf("default depth/stencil = %d/%d, want 24/8", c.DepthBits, c.StencilBits)
	}
	if c.SwapInterval != 1 {
		t.Errorf("default swap interval = %d, want vsync", c.SwapInterval)
	}
}

func TestDefaultWindowConfig(t *testing.T) {
	w := DefaultWindowConfig("demo")
	if w.Title != "demo" {
		t.Errorf("title = %q, want demo", w.Title)
	}
	if w.Width != 1280 || w.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", w.Width, w.Height)
	}
	if !w.Resizable || !w.Decorated {
		t.Error("default window should be resizable and decorated")
	}
	if w.X != -1 || w.Y != -1 {
		t.Errorf("position = %d,%d, want system-chosen", w.X, w.Y)
	}
}

func TestContextProfileString(t *testing.T) {
	cases := map[ContextProfile]string{
		ProfileCore:          "core",
		ProfileCompatibility: "compatibility",
		ProfileES:            "es",
		ContextProfile(99):   "unknown",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("ContextProfile(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
