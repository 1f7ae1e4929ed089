package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/internal/parallel"
)

// Batch holds the input and output options shared by every command.
type Batch struct {
	Scan   string `arg:"" optional:"" help:"Source folder to scan." default:"."`
	Dest   string `help:"Destination folder. Relative to the scanned folder if not absolute." default:"pixtool"`
	Format string `help:"Output format." enum:"png,bmp,tiff" default:"png"`
}

// Validate resolves Scan and Dest to absolute paths.
func (b *Batch) Validate(*kong.Context) error {
	scanDir, err := filepath.Abs(b.Scan)
	if err == nil {
		var info os.FileInfo
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", b.Scan, err)
	}
	b.Scan = scanDir

	if !filepath.IsAbs(b.Dest) {
		b.Dest = filepath.Join(scanDir, b.Dest)
	}
	return nil
}

// transform processes one decoded image. It may modify img in place and
// return it, or return a new image.
type transform func(logger *slog.Logger, img *pix.Image) (*pix.Image, error)

// run applies fn to every regular file of the scan folder on the pool and
// logs a summary. It fails if any file failed.
func (b *Batch) run(ctx context.Context, pool *parallel.WorkerPool, name string, fn transform) error {
	if err := os.MkdirAll(b.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", b.Dest, err)
	}
	entries, err := os.ReadDir(b.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", b.Scan, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}

	jobs := make([]parallel.Job, len(files))
	for i, file := range files {
		jobs[i] = func(context.Context) error {
			return b.process(slog.Default().With("command", name, "file", file), file, fn)
		}
	}

	var processed, failed int
	for i, err := range pool.Run(ctx, jobs) {
		if err != nil {
			failed++
			slog.Error("could not process image", "file", files[i], "error", err)
			continue
		}
		processed++
	}
	slog.Info("stats", "command", name, "processed", processed, "errors", failed, "total", len(files))

	if failed > 0 {
		return fmt.Errorf("error processing %d of %d files", failed, len(files))
	}
	return nil
}

func (b *Batch) process(logger *slog.Logger, file string, fn transform) error {
	img, err := load(filepath.Join(b.Scan, file))
	if err != nil {
		return err
	}
	w, h := img.Size()
	logger.Debug("decoded", "width", w, "height", h)

	out, err := fn(logger, img)
	if err != nil {
		return err
	}
	return save(out, b.Format, b.Dest, file)
}

func load(path string) (*pix.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return pix.FromImage(src), nil
}

// save encodes img next to a temporary name in destDir and renames it
// into place once the encoder succeeded.
func save(img *pix.Image, format, destDir, srcName string) (err error) {
	destName := strings.TrimSuffix(srcName, filepath.Ext(srcName)) + "." + format

	out, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", destName, err)
	}
	done := false
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", destName, cerr)
		}
		if done && err == nil {
			if rerr := os.Rename(out.Name(), filepath.Join(destDir, destName)); rerr != nil {
				err = fmt.Errorf("could not rename destination %q: %w", destName, rerr)
			}
		}
		if err != nil {
			_ = os.Remove(out.Name())
		}
	}()

	nrgba := img.ToNRGBA()
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression, BufferPool: pngPool}
		err = enc.Encode(out, nrgba)
	case "bmp":
		err = bmp.Encode(out, nrgba)
	case "tiff":
		err = tiff.Encode(out, nrgba, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", destName, err)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("could not flush %q: %w", destName, err)
	}
	done = true
	return nil
}

type pngBufferPool struct {
	pool sync.Pool
}

func (p *pngBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngBufferPool{
	pool: sync.Pool{New: func() any { return &png.EncoderBuffer{} }},
}
