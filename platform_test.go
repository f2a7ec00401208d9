package helix

import (
	"errors"
	"testing"
)

func TestPlatformTarget(t *testing.T) {
	cases := []struct {
		goos    string
		triplet string
		ext     string
	}{
		{"windows", "win-x64", ".dll"},
		{"darwin", "os-x64", ".dylib"},
		{"linux", "linux-x64", ".so"},
		{"freebsd", "linux-x64", ".so"},
	}
	for _, tc := range cases {
		tgt, err := platformTarget(tc.goos)
		if err != nil {
			t.Errorf("platformTarget(%s) error: %v", tc.goos, err)
			continue
		}
		if tgt.triplet != tc.triplet || tgt.ext != tc.ext {
			t.Errorf("platformTarget(%s) = %+v, want {%s %s}", tc.goos, tgt, tc.triplet, tc.ext)
		}
	}
}

func TestPlatformTargetUnsupported(t *testing.T) {
	for _, goos := range []string{"plan9", "js", "wasip1", ""} {
		if _, err := platformTarget(goos); !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("platformTarget(%q) = %v, want ErrUnsupportedPlatform", goos, err)
		}
	}
}
