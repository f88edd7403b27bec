package extraction

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract([]byte("Jane Doe\nSkills: Go, SQL\n"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, SQL\n", text)
}

func TestExtract_TextSubtype(t *testing.T) {
	text, err := Extract([]byte("name,skill\njane,go\nbob,sql\n"))

	require.NoError(t, err)
	assert.Contains(t, text, "jane,go")
}

func TestExtract_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("  \n\t ")} {
		_, err := Extract(data)
		assert.ErrorIs(t, err, ErrNoText)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	_, err := Extract(png)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.MIME)
	assert.Equal(t, "unsupported file type: image/png", err.Error())
}

func TestExtract_MalformedPDF(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4\nnot really a pdf\n"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "pdf", decodeErr.Format)
}

// brokenHexPDF points startxref at an object whose dictionary holds an invalid
// hex string.
const brokenHexPDF = "%PDF-1.4\n1 0 obj\n<< /Length <zz> >>\nendobj\nstartxref\n9\n%%EOF\n"

func TestExtract_PDFParserFailuresBecomeDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid hex string", data: brokenHexPDF},
		{name: "stray delimiter", data: "%PDF-1.4\n1 0 obj\n<< /Type > >>\nendobj\nstartxref\n9\n%%EOF\n"},
		{name: "truncated trailer", data: "%PDF-1.4\nstartxref\n%%EOF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = Extract([]byte(tt.data))
			})

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "pdf", decodeErr.Format)
		})
	}
}

func TestExtractPDF_RecoversParserPanic(t *testing.T) {
	orig := openPDF
	t.Cleanup(func() { openPDF = orig })
	openPDF = func(io.ReaderAt, int64) (*pdf.Reader, error) {
		panic("malformed hex string")
	}

	text, err := Extract([]byte(brokenHexPDF))

	assert.Empty(t, text)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "pdf", decodeErr.Format)
	assert.EqualError(t, decodeErr.Cause, "malformed hex string")
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skills: python"), 0o644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Skills: python", text)

	text, err = Extractor{}.ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Skills: python", text)

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "failed to read resume file")
}

func TestXMLText(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills: Go, SQL</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := xmlText(content)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, SQL", text)
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectType([]byte("%PDF-1.7\n")))
	assert.Contains(t, DetectType([]byte("hello world")), "text/plain")
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Format: "docx", Cause: assert.AnError}
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "failed to decode docx", (&DecodeError{Format: "docx"}).Error())
}
