package validation_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/minigram/minigram/internal/validation"
	"github.com/stretchr/testify/require"
)

var (
	gifBytes = append([]byte("GIF89a"), make([]byte, 32)...)
	pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		wantErr  bool
	}{
		{"gif", "anim.gif", gifBytes, false},
		{"png", "shot.png", pngBytes, false},
		{"plain text", "notes.txt", []byte("just some text content here"), true},
		{"image content wrong extension", "shot.exe", pngBytes, true},
		{"empty file", "empty.png", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateImageFile(fileHeader(t, tt.filename, tt.content))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
