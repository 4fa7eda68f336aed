// mkicons generates the Forest Floor icon asset set: seven PNGs plus the
// .icns and .ico containers, all derived from a single procedural render.
// Usage: mkicons [--output-dir assets/icons]
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/forestfloor/iconassets/internal/assets"
)

func main() {
	outDir := flag.String("output-dir", "assets/icons", "directory where generated icons are written")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	}).With().Timestamp().Logger()

	g := assets.Generator{OutDir: *outDir, Log: logger}
	if err := g.Run(); err != nil {
		logger.Error().Err(err).Msg("icon generation failed")
		os.Exit(1)
	}
}
