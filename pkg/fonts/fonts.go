// Package fonts manages the Avenir font assets required for figure text.
//
// The font is not embedded in the binary (its license does not allow
// redistribution inside the tool); instead the original font archive is
// fetched over HTTP on first use and unpacked into a caller-provided
// resource directory. The fetch is idempotent, keyed on the extracted
// directory existing, and can be served from a [cache.Cache] so repeated
// setups skip the network entirely.
//
// Without fonts no plot can be produced, so any acquisition failure is
// surfaced as a hard ASSET_UNAVAILABLE error with no fallback font.
package fonts

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/niudunkule/ctviz/pkg/cache"
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/httputil"
)

const (
	// DefaultArchiveURL is the canonical location of the Avenir archive.
	DefaultArchiveURL = "https://github.com/niudunkule/CT-super-resolution-mdrbGAN/raw/master/Avenir-Font.zip"

	// FamilyName is the CSS font-family name used in rendered SVGs.
	FamilyName = "Avenir LT Std"

	// archiveDir is the directory the archive unpacks into; its presence
	// marks the assets as installed.
	archiveDir = "avenir_ff"

	// regularFile is the font weight every text handle uses.
	regularFile = "AvenirLTStd-Book.otf"
)

// Point sizes for the four text roles, matching the plot design.
const (
	TitleSize     = 16
	LabelSize     = 14
	TextSize      = 12
	TextSmallSize = 12
)

// archiveTTL bounds how long a cached archive is reused.
const archiveTTL = 30 * 24 * time.Hour

// Handle describes one font role: where the face lives on disk, its point
// size, and its style attribute.
type Handle struct {
	Path  string
	Size  float64
	Style string
}

// Set bundles the four font handles used by every plot. A Set is created
// once by [Ensure] and treated as immutable afterwards.
type Set struct {
	Title     Handle
	Label     Handle
	Text      Handle
	TextSmall Handle

	regular []byte // raw OTF bytes for SVG embedding

	b64     string
	b64Once sync.Once
}

// RegularBase64 returns the regular face encoded for a data: URI in an
// SVG @font-face rule. The encoding is computed once and cached.
func (s *Set) RegularBase64() string {
	s.b64Once.Do(func() {
		s.b64 = base64.StdEncoding.EncodeToString(s.regular)
	})
	return s.b64
}

// Option configures Ensure.
type Option func(*ensurer)

// WithURL overrides the archive download location.
func WithURL(url string) Option {
	return func(e *ensurer) { e.url = url }
}

// WithClient sets the HTTP client used for the download.
func WithClient(c *http.Client) Option {
	return func(e *ensurer) { e.client = c }
}

// WithCache routes the archive download through a cache.
func WithCache(c cache.Cache) Option {
	return func(e *ensurer) { e.cache = c }
}

type ensurer struct {
	url    string
	client *http.Client
	cache  cache.Cache
}

// Ensure makes the font assets available under dir, downloading and
// unpacking the archive if they are absent, and returns the font set.
// Calling Ensure on an already-populated directory touches neither the
// network nor the cache.
func Ensure(ctx context.Context, dir string, opts ...Option) (*Set, error) {
	e := ensurer{
		url:   DefaultArchiveURL,
		cache: cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(&e)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnavailable, err,
			"create resource directory %s", dir)
	}

	installed := filepath.Join(dir, archiveDir)
	if _, err := os.Stat(installed); os.IsNotExist(err) {
		if err := e.install(ctx, dir); err != nil {
			return nil, err
		}
	}

	return Load(dir)
}

// install fetches the archive (through the cache when possible) and
// unpacks it into dir.
func (e *ensurer) install(ctx context.Context, dir string) error {
	key := cache.ArchiveKey(e.url)

	archive, hit, err := e.cache.Get(ctx, key)
	if err != nil || !hit {
		archive, err = httputil.Fetch(ctx, e.client, e.url)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAssetUnavailable, err,
				"download font archive %s", e.url)
		}
		_ = e.cache.Set(ctx, key, archive, archiveTTL)
	}

	if err := unpack(archive, dir); err != nil {
		return errors.Wrap(errors.ErrCodeAssetUnavailable, err,
			"unpack font archive into %s", dir)
	}
	return nil
}

// Load builds the font set from a resource directory that already holds
// the unpacked archive, skipping any network access. Use [Ensure] when
// the assets may still be absent.
func Load(dir string) (*Set, error) {
	path := filepath.Join(dir, archiveDir, regularFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetUnavailable, err,
			"read font face %s", path)
	}

	handle := func(size float64) Handle {
		return Handle{Path: path, Size: size, Style: "normal"}
	}
	return &Set{
		Title:     handle(TitleSize),
		Label:     handle(LabelSize),
		Text:      handle(TextSize),
		TextSmall: handle(TextSmallSize),
		regular:   data,
	}, nil
}

// unpack extracts a zip archive into dir. Entries that would escape dir
// are rejected.
func unpack(archive []byte, dir string) error {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return err
	}

	for _, f := range r.File {
		target := filepath.Join(dir, filepath.Clean(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
			return errors.New(errors.ErrCodeInvalidPath,
				"archive entry escapes target directory: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
