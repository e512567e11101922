package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"triz/standards/internal/domain"
)

var (
	// ErrNoDetailStore marks a detail store that could not be read or understood.
	ErrNoDetailStore = errors.New("no detail store available")
	ErrUnknownFormat = errors.New("unknown detail store format")
)

type Format string

func (f Format) String() string {
	return string(f)
}

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json" // JSON, comments allowed
	FormatHTML Format = "html" // one table of standards
)

type DetailRepository interface {
	Load(ctx context.Context) (*domain.DetailStore, error)
}

type detailRepository struct {
	path   string
	format Format
	decode func(data []byte) (*domain.Node, error)
}

func NewDetailRepository(path string, format Format, schema domain.RecordSchema) (DetailRepository, error) {
	resolved, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}

	r := &detailRepository{
		path:   path,
		format: resolved,
	}

	switch resolved {
	case FormatJSON:
		r.decode = decodeJSONDocument
	case FormatHTML:
		r.decode = newHTMLParser(schema).Parse
	}

	return r, nil
}

func (r *detailRepository) Load(ctx context.Context) (*domain.DetailStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrNoDetailStore, r.path, err)
	}

	root, err := r.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s as %s: %w", ErrNoDetailStore, r.path, r.format, err)
	}

	store := domain.NewDetailStore(root)
	log.Debugf("Loaded detail store %s (%s) with %d top-level entries", r.path, r.format, store.Len())
	return store, nil
}

func resolveFormat(path string, format Format) (Format, error) {
	switch Format(strings.ToLower(format.String())) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatAuto, "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".json", ".jsonc", "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: cannot infer from %s", ErrUnknownFormat, path)
	}
}
