package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.HarvestWriter = (*Writer)(nil)

// Writer implements driven.HarvestWriter on the local filesystem.
type Writer struct {
	perm os.FileMode
}

// New creates a writer producing files with mode 0644.
func New() *Writer {
	return &Writer{perm: 0644}
}

// Write encodes h in the requested format and atomically replaces out.Path.
func (w *Writer) Write(ctx context.Context, out domain.OutputSpec, h *domain.Harvest) error {
	if h == nil {
		return fmt.Errorf("%w: nil harvest", domain.ErrInvalidInput)
	}
	if out.Path == "" {
		return fmt.Errorf("%w: empty output path", domain.ErrInvalidInput)
	}

	doc, err := Document(out.Format, h)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(out.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	tmp := out.Path + ".part"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if out.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encoding harvest: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, out.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", out.Path, err)
	}
	return nil
}

// Document returns the value encoded for format. An empty format means records.
func Document(format domain.OutputFormat, h *domain.Harvest) (any, error) {
	switch format {
	case domain.FormatRecords, "":
		return h.Records(), nil
	case domain.FormatMonthly:
		return h.Monthly(), nil
	case domain.FormatNames:
		return h.Names(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}
