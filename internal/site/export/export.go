// Package export renders the site to a directory of static files.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hugodevelopr/hugodeveloper/internal/site/observability"
	"github.com/hugodevelopr/hugodeveloper/internal/site/pages"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
)

// ManifestFile lists the exported files next to the pages.
const ManifestFile = "manifest.json"

// Options configures a static export.
type Options struct {
	Fs       afero.Fs
	OutDir   string
	Platform platform.SitePlatform
	Content  home.PageData
	// Assets is copied verbatim into OutDir. Nil skips the copy.
	Assets fs.FS
	// Logger defaults to the logger carried by the context.
	Logger *zap.Logger
}

// Report summarises an export.
type Report struct {
	Version int      `json:"version"`
	Pages   []string `json:"pages"`
	Assets  []string `json:"assets"`
	Bytes   int64    `json:"bytes"`
}

// Run renders every page and copies the assets. Existing files are overwritten.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Platform == nil {
		return Report{}, fmt.Errorf("export: platform is required")
	}
	if opts.OutDir == "" {
		opts.OutDir = "build"
	}
	logger := opts.Logger
	if logger == nil {
		logger = observability.FromContext(ctx)
	}

	if err := opts.Fs.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	report := Report{Version: 1}
	for _, page := range pages.All(opts.Content) {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		var buf bytes.Buffer
		if err := page.Render(opts.Platform).Render(&buf); err != nil {
			return Report{}, fmt.Errorf("export: render %s: %w", page.Name, err)
		}
		n, err := write(opts.Fs, filepath.Join(opts.OutDir, page.File), &buf)
		if err != nil {
			return Report{}, err
		}
		report.Pages = append(report.Pages, page.File)
		report.Bytes += n
		logger.Debug("exported page", zap.String("page", page.Name), zap.String("file", page.File), zap.Int64("bytes", n))
	}

	if opts.Assets != nil {
		err := fs.WalkDir(opts.Assets, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return ctx.Err()
			}
			f, err := opts.Assets.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := write(opts.Fs, filepath.Join(opts.OutDir, filepath.FromSlash(name)), f)
			if err != nil {
				return err
			}
			report.Assets = append(report.Assets, path.Clean(name))
			report.Bytes += n
			return nil
		})
		if err != nil {
			return Report{}, fmt.Errorf("export: copy assets: %w", err)
		}
	}
	sort.Strings(report.Assets)

	manifest, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Report{}, fmt.Errorf("export: encode manifest: %w", err)
	}
	if _, err := write(opts.Fs, filepath.Join(opts.OutDir, ManifestFile), bytes.NewReader(manifest)); err != nil {
		return Report{}, err
	}

	logger.Info("export complete",
		zap.String("out", opts.OutDir),
		zap.Int("pages", len(report.Pages)),
		zap.Int("assets", len(report.Assets)),
		zap.Int64("bytes", report.Bytes),
	)
	return report, nil
}

func write(fsys afero.Fs, name string, r io.Reader) (int64, error) {
	if err := fsys.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return 0, fmt.Errorf("export: create %s: %w", filepath.Dir(name), err)
	}
	f, err := fsys.Create(name)
	if err != nil {
		return 0, fmt.Errorf("export: create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("export: write %s: %w", name, err)
	}
	return n, nil
}
