package icons

import (
	"fmt"
	"os"
	"path/filepath"

	"appicon/internal/ico"
	"appicon/internal/logging"
	"appicon/internal/pngcodec"
	"appicon/internal/raster"
)

// Generator scales and encodes one base image into any number of square
// PNGs. Encoded bytes are memoized per edge length, so targets sharing a
// size are computed once and always receive identical bytes.
type Generator struct {
	base      *raster.Image
	exportDir string
	logger    *logging.Logger
	cache     map[int][]byte
	hits      int
}

type Options struct {
	Targets []Target
	// ICOPath is relative to the export directory; empty skips the icon.
	ICOPath string
}

type Report struct {
	Written   []string
	Encoded   int
	CacheHits int
	ICOPath   string
}

func NewGenerator(base *raster.Image, exportDir string, logger *logging.Logger) *Generator {
	if base == nil {
		panic("icons.NewGenerator: base image must not be nil")
	}
	if logger == nil {
		panic("icons.NewGenerator: logger must not be nil")
	}
	return &Generator{
		base:      base,
		exportDir: exportDir,
		logger:    logger,
		cache:     map[int][]byte{},
	}
}

// PNG returns the encoded PNG for a size x size rendition of the base image.
func (g *Generator) PNG(size int) ([]byte, error) {
	if data, ok := g.cache[size]; ok {
		g.hits++
		return data, nil
	}
	scaled, err := raster.ScaleNearest(g.base, size)
	if err != nil {
		return nil, fmt.Errorf("scale to %d: %w", size, err)
	}
	data, err := pngcodec.Encode(scaled)
	if err != nil {
		return nil, fmt.Errorf("encode %dpx: %w", size, err)
	}
	g.cache[size] = data
	g.logger.Debug("encoded icon size",
		logging.Field("size", size),
		logging.Field("bytes", len(data)),
	)
	return data, nil
}

// Run writes every PNG target in order, then the Windows icon from the
// 256px rendition. The first failure aborts the remaining targets.
func (g *Generator) Run(opts Options) (Report, error) {
	report := Report{}
	hitsBefore := g.hits
	encodedBefore := len(g.cache)

	for _, target := range opts.Targets {
		_, cached := g.cache[target.Size]
		data, err := g.PNG(target.Size)
		if err != nil {
			return report, fmt.Errorf("target %s: %w", target.Path, err)
		}
		path := g.outputPath(target.Path)
		if err := writeFile(path, data); err != nil {
			return report, err
		}
		report.Written = append(report.Written, path)
		g.logger.Info("wrote icon",
			logging.Field("path", path),
			logging.Field("size", target.Size),
			logging.Field("bytes", len(data)),
			logging.Field("cached", cached),
		)
	}

	if opts.ICOPath != "" {
		data, err := g.PNG(ICOSize)
		if err != nil {
			return report, fmt.Errorf("windows icon: %w", err)
		}
		icoData, err := ico.Write(data, ICOSize)
		if err != nil {
			return report, fmt.Errorf("windows icon: %w", err)
		}
		path := g.outputPath(opts.ICOPath)
		if err := writeFile(path, icoData); err != nil {
			return report, err
		}
		report.ICOPath = path
		g.logger.Info("wrote windows icon",
			logging.Field("path", path),
			logging.Field("bytes", len(icoData)),
		)
	}

	report.Encoded = len(g.cache) - encodedBefore
	report.CacheHits = g.hits - hitsBefore
	return report, nil
}

func (g *Generator) outputPath(rel string) string {
	return filepath.Join(g.exportDir, filepath.FromSlash(rel))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
