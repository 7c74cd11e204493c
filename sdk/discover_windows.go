//go:build windows

package sdk

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/clarete/hdrscan/version"
)

// Discover reads installed Windows Kits from
// HKLM\SOFTWARE\Microsoft\Windows Kits\Installed Roots, returning a
// WindowsKit for each versioned subdirectory found under the kit
// root's Include tree. Grounded on the //go:build windows /
// golang.org/x/sys/windows registry-access split demonstrated in
// joshuapare-hivekit/hive/dirty/flush_windows.go.
func Discover() ([]WindowsKit, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows Kits\Installed Roots`, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	root, _, err := k.GetStringValue("KitsRoot10")
	if err != nil {
		return nil, err
	}

	includeRoot := filepath.Join(root, "Include")
	entries, err := readDirNames(includeRoot)
	if err != nil {
		return nil, err
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
