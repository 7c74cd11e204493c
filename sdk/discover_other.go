//go:build !windows

package sdk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/clarete/hdrscan/version"
)

// Discover has no registry to read outside Windows. It falls back to
// the WINDOWSSDKDIR environment variable some cross-compilation setups
// and CI runners export, and otherwise returns no kits rather than
// erroring, mirroring the unix side of the joshuapare-hivekit
// flush_windows.go/flush_unix.go build-tag split.
func Discover() ([]WindowsKit, error) {
	root := os.Getenv("WINDOWSSDKDIR")
	if root == "" {
		return nil, nil
	}

	includeRoot := filepath.Join(root, "Include")
	entries, err := readDirNames(includeRoot)
	if err != nil {
		return nil, nil
	}

	var kits []WindowsKit
	for _, name := range entries {
		if !strings.HasPrefix(name, "10.") {
			continue
		}
		v, err := version.Parse(name)
		if err != nil {
			continue
		}
		kits = append(kits, WindowsKit{Version: v, Include: filepath.Join(includeRoot, name)})
	}
	return kits, nil
}
