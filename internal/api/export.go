package api

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type ExportKind string

const (
	ExportProfitability ExportKind = "profitability"
	ExportExplorer      ExportKind = "explorer"
)

func (k ExportKind) path() string {
	return fmt.Sprintf("/%s/export", k)
}

// DefaultFilename is used when the response doesn't name the file.
func (k ExportKind) DefaultFilename() string {
	return fmt.Sprintf("%s_export.xlsx", k)
}

// Blob is a downloaded file.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export downloads the workbook the backend generates for `kind`.
func (c *Client) Export(ctx context.Context, kind ExportKind) (Blob, error) {
	ctx, span := tracer.Start(ctx, "Export")
	defer span.End()
	span.SetAttributes(attribute.String("kind", string(kind)))

	res, err := c.do(ctx, http.MethodGet, kind.path(), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return Blob{}, err
	}

	name := filenameFromDisposition(res.Header().Get("content-disposition"))
	if name == "" {
		name = kind.DefaultFilename()
	}
	return Blob{
		Filename:    name,
		ContentType: res.Header().Get("content-type"),
		Data:        res.Body(),
	}, nil
}

func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(params["filename"])
	if name == "" {
		return ""
	}
	// never let the server pick the directory
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		return ""
	}
	return name
}
