// Package assets drives the full icon pipeline: render each resolution,
// encode it as PNG, write the files, then fold them into the .icns and
// .ico containers. Every run regenerates everything; output bytes are
// identical across runs.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/forestfloor/iconassets/internal/icns"
	"github.com/forestfloor/iconassets/internal/ico"
	"github.com/forestfloor/iconassets/internal/icon"
	"github.com/forestfloor/iconassets/internal/paths"
	"github.com/forestfloor/iconassets/internal/pngenc"
)

// BaseName prefixes every generated file.
const BaseName = "forest-floor"

// Sizes lists the PNG resolutions in generation order.
var Sizes = []int{1024, 512, 256, 128, 64, 32, 16}

// Generator writes the complete icon asset set into OutDir.
type Generator struct {
	OutDir string
	Log    zerolog.Logger
}

// Run generates the seven PNGs plus the .icns and .ico containers,
// creating OutDir (and parents) first. Failures abort immediately;
// partial output is fine since a re-run rewrites every file.
func (g Generator) Run() error {
	out, err := filepath.Abs(g.OutDir)
	if err != nil {
		return fmt.Errorf("assets: resolve output dir: %w", err)
	}
	if err := os.MkdirAll(out, paths.DirPerm); err != nil {
		return fmt.Errorf("assets: create output dir: %w", err)
	}

	for _, size := range Sizes {
		rows, err := icon.Render(size, size)
		if err != nil {
			return fmt.Errorf("assets: render %d: %w", size, err)
		}
		data, err := pngenc.Encode(size, size, rows)
		if err != nil {
			return fmt.Errorf("assets: encode %d: %w", size, err)
		}
		path := pngPath(out, size)
		if err := paths.AtomicWrite(path, data); err != nil {
			return fmt.Errorf("assets: write %s: %w", filepath.Base(path), err)
		}
		g.Log.Info().Str("file", filepath.Base(path)).Int("size", size).Int("bytes", len(data)).Msg("wrote png")
	}

	// Containers are packed from the files on disk, not the in-memory
	// buffers, so the shipped containers always match the shipped PNGs.
	members := make(map[string][]byte, len(icns.Entries))
	for _, e := range icns.Entries {
		data, err := os.ReadFile(pngPath(out, e.Size))
		if err != nil {
			return fmt.Errorf("assets: read back %d png: %w", e.Size, err)
		}
		members[e.Type] = data
	}
	icnsData, err := icns.Pack(members)
	if err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	icnsPath := filepath.Join(out, BaseName+".icns")
	if err := paths.AtomicWrite(icnsPath, icnsData); err != nil {
		return fmt.Errorf("assets: write %s: %w", filepath.Base(icnsPath), err)
	}
	g.Log.Info().Str("file", filepath.Base(icnsPath)).Int("bytes", len(icnsData)).Msg("wrote icns")

	png256, err := os.ReadFile(pngPath(out, 256))
	if err != nil {
		return fmt.Errorf("assets: read back 256 png: %w", err)
	}
	icoData := ico.Pack(png256)
	icoPath := filepath.Join(out, BaseName+".ico")
	if err := paths.AtomicWrite(icoPath, icoData); err != nil {
		return fmt.Errorf("assets: write %s: %w", filepath.Base(icoPath), err)
	}
	g.Log.Info().Str("file", filepath.Base(icoPath)).Int("bytes", len(icoData)).Msg("wrote ico")

	return nil
}

func pngPath(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%d.png", BaseName, size))
}
