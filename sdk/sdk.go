// Package sdk locates installed Windows Kits and lists the curated
// header subset a Builder can scan without walking an entire kit.
// Discovery of which kits exist on a machine is explicitly out of
// scope for the core catalog (it depends on how the host is set up,
// not on anything the scanner itself needs to reason about), so it
// lives here as a small, separable collaborator per spec.md §1/§6.
package sdk

import "github.com/clarete/hdrscan/version"

// WindowsKit identifies one installed Windows Kits version and the
// root of its Include tree.
type WindowsKit struct {
	Version version.Version
	Include string
}

// CuratedHeaders is the documented known-working header subset
// AddFromSDK scans when forceAll is false, ported from
// original_source/src/types/_builder.rs::add_from_sdk's inline list.
var CuratedHeaders = []string{
	// misc
	"um/windows.h",
	"um/winuser.h",
	"um/wingdi.h",
	"shared/windef.h",
	"shared/minwindef.h",
	"um/unknwn.h",
	"um/combaseapi.h",
	"um/objbase.h",

	// d3d
	"um/d3dcommon.h",

	// d3d9
	"um/d3d9.h",
	"um/d3d9types.h",
	"um/d3d9caps.h",

	// d3d11
	"um/d3d11.h",
	"um/d3d11_1.h",
	"um/d3d11_2.h",
	"um/d3d11_3.h",
	"um/d3d11_4.h",
	"um/d3d11shader.h",

	// d3d12
	"um/d3d12.h",
	"um/d3d12sdklayers.h",
	"um/d3d12shader.h",

	// d3dcompiler
	"um/d3dcompiler.h",

	// dinput
	"um/dinput.h",

	// dxgi
	"shared/dxgi.h",
	"shared/dxgi1_2.h",
	"shared/dxgi1_3.h",
	"shared/dxgi1_4.h",
	"shared/dxgi1_5.h",
	"shared/dxgi1_6.h",
	"shared/dxgiformat.h",

	// xaudio2
	"um/xaudio2.h",
	"um/xaudio2fx.h",

	// xinput
	"um/xinput.h",
}
