package hdrscan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/clarete/hdrscan/internal/hlog"
	"github.com/clarete/hdrscan/sdk"
)

// Builder accumulates parsed headers into a single Root catalog.
// Single-threaded and blocking by design (spec.md §5): a file is
// opened, mapped, decoded, parsed, and released before the next one is
// touched. Grounded on original_source/src/types/_builder.rs.
type Builder struct {
	catalog *Root
	logger  hlog.Logger
}

// NewBuilder returns a Builder ready to accumulate headers.
func NewBuilder() *Builder {
	return &Builder{catalog: NewRoot(), logger: hlog.NopLogger{}}
}

// WithLogger attaches a logger that receives progress/warning output
// as AddFromDir/AddFromSDK walk a corpus. The scanner core itself
// (Parser/Root) stays silent per spec.md §7; only this collaborator
// layer logs.
func (b *Builder) WithLogger(l hlog.Logger) *Builder {
	b.logger = l
	return b
}

// AddFromCppPath memory-maps path and parses it into the builder's
// catalog. Grounded on saferwall-pe/file.go's
// mmap.Map(f, mmap.RDONLY, 0) open-map-parse-close lifecycle.
func (b *Builder) AddFromCppPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("hdrscan: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("hdrscan: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("hdrscan: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	src, err := decodeHeaderBytes(m)
	if err != nil {
		return fmt.Errorf("hdrscan: decode %s: %w", path, err)
	}

	file := &SourceFile{Path: path}
	parser := NewParser(file, src, b.catalog)
	parser.Run()

	b.logger.Infof("scanned %s", path)
	return nil
}

// AddFromDir walks root recursively, parsing every .h/.hpp file found.
// Grounded on original_source/src/types/_builder.rs::add_from_dir's
// recursive directory walk and extension filter.
func (b *Builder) AddFromDir(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".h", ".hpp":
		default:
			return nil
		}
		if addErr := b.AddFromCppPath(path); addErr != nil {
			b.logger.Warnf("skipping %s: %v", path, addErr)
		}
		return nil
	})
}

// AddFromSDK scans a Windows Kit installation. When forceAll is true,
// it walks the kit's entire Include root like AddFromDir; otherwise it
// restricts the scan to sdk.CuratedHeaders, the documented
// known-working subset. Mirrors
// original_source/src/types/_builder.rs::add_from_sdk's force_all
// branch exactly.
func (b *Builder) AddFromSDK(kit sdk.WindowsKit, forceAll bool) error {
	if forceAll {
		return b.AddFromDir(kit.Include)
	}
	for _, rel := range sdk.CuratedHeaders {
		path := filepath.Join(kit.Include, rel)
		if _, err := os.Stat(path); err != nil {
			b.logger.Warnf("curated header not found in kit %s: %s", kit.Version, rel)
			continue
		}
		if err := b.AddFromCppPath(path); err != nil {
			b.logger.Warnf("skipping %s: %v", path, err)
		}
	}
	return nil
}

// Finish runs the cleanup passes and returns the finished catalog.
// After Finish, the Builder should not be reused.
func (b *Builder) Finish() *Root {
	b.catalog.Cleanup()
	return b.catalog
}
