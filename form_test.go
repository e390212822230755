package plainai

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeForm parses an encoded multipart body back into its parts.
func decodeForm(t *testing.T, form *Form) *multipart.Form {
	t.Helper()

	buf, contentType, err := form.encode()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(buf, params["boundary"])
	parsed, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return parsed
}

func TestFormTextFields(t *testing.T) {
	t.Run("stringifies scalar values", func(t *testing.T) {
		form := NewForm().
			Text("model", "whisper-1").
			Text("n", 3).
			Text("temperature", 0.5).
			Text("stream", true)

		parsed := decodeForm(t, form)
		assert.Equal(t, []string{"whisper-1"}, parsed.Value["model"])
		assert.Equal(t, []string{"3"}, parsed.Value["n"])
		assert.Equal(t, []string{"0.5"}, parsed.Value["temperature"])
		assert.Equal(t, []string{"true"}, parsed.Value["stream"])
	})

	t.Run("unset fields are absent", func(t *testing.T) {
		parsed := decodeForm(t, NewForm().Text("model", "whisper-1"))
		assert.Len(t, parsed.Value, 1)
		assert.NotContains(t, parsed.Value, "prompt")
	})
}

func TestFormFileFields(t *testing.T) {
	t.Run("uploads file contents with filename and content type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clip.png")
		require.NoError(t, os.WriteFile(path, []byte("fake png bytes"), 0o600))

		form := NewForm().Text("model", "dall-e-2").File("image", path)
		parsed := decodeForm(t, form)

		require.Len(t, parsed.File["image"], 1)
		header := parsed.File["image"][0]
		assert.Equal(t, "clip.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		f, err := header.Open()
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "fake png bytes", string(content))
	})

	t.Run("unknown extension falls back to octet-stream", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.unknownext")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

		parsed := decodeForm(t, NewForm().File("file", path))
		header := parsed.File["file"][0]
		assert.Equal(t, "application/octet-stream", header.Header.Get("Content-Type"))
	})

	t.Run("missing file is an io error", func(t *testing.T) {
		form := NewForm().File("image", filepath.Join(t.TempDir(), "absent.png"))

		_, _, err := form.encode()
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ErrorIO, apiErr.Kind)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
