// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/rehabtrack/rehab/internal/osutil"
)

const (
	filesDir = "files"
	iconName = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// CopyToDataDir writes the embedded files under the XDG data directory for
// appDir, leaving existing copies alone.
func CopyToDataDir(appDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, filesDir+"/")

			destPath, err := xdg.DataFile(
				filepath.Join(appDir, "static", filepath.FromSlash(stripped)),
			)
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, 0o644)
		},
	)
}

// IconPath returns the copied notification icon, or "" if it is missing.
func IconPath(appDir string) string {
	p, _ := xdg.SearchDataFile(filepath.Join(appDir, "static", iconName))

	return p
}

// Icon returns the embedded icon bytes.
func Icon() ([]byte, error) {
	return embeddedFiles.ReadFile(path.Join(filesDir, iconName))
}
