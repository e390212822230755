package plainai

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
)

// Form accumulates fields for a multipart/form-data request. Text fields
// accept any scalar value and are stringified; file fields name a local path
// whose contents are read when the request is dispatched. Fields keep their
// insertion order.
type Form struct {
	fields []formField
}

type formField struct {
	key   string
	value string // text field content
	path  string // file path; non-empty marks a file field
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Text adds a text field. The value may be a string, number, or bool; it is
// converted to its string representation on the wire.
func (f *Form) Text(key string, value any) *Form {
	f.fields = append(f.fields, formField{key: key, value: cast.ToString(value)})
	return f
}

// File adds a file field referencing a local path. The path is not touched
// until the request is dispatched; an unreadable path fails the call with an
// ErrorIO error before any network I/O.
func (f *Form) File(key, path string) *Form {
	f.fields = append(f.fields, formField{key: key, path: path})
	return f
}

// encode renders the form into a multipart body, reading every file field
// from disk. It returns the body and the Content-Type header value.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if field.path == "" {
			if err := w.WriteField(field.key, field.value); err != nil {
				return nil, "", newIOError(fmt.Sprintf("writing form field %q", field.key), err)
			}
			continue
		}

		data, err := os.ReadFile(field.path)
		if err != nil {
			return nil, "", newIOError(fmt.Sprintf("reading %s", field.path), err)
		}

		part, err := w.CreatePart(fileHeader(field.key, field.path))
		if err != nil {
			return nil, "", newIOError(fmt.Sprintf("writing form file %q", field.key), err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, "", newIOError(fmt.Sprintf("writing form file %q", field.key), err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", newIOError("finalizing multipart form", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// fileHeader builds the part header for a file field, deriving the content
// type from the file extension.
func fileHeader(key, path string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(key), escapeQuotes(filepath.Base(path))))

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return h
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
