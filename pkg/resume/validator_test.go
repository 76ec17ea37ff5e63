package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pdfBytes() []byte {
	return append([]byte("%PDF-1.4\n"), make([]byte, 64)...)
}

func TestValidatePDF(t *testing.T) {
	result := Validate("resume.pdf", pdfBytes())
	assert.True(t, result.Valid, result.Error)
	assert.Equal(t, ".pdf", result.Extension)
}

func TestValidatePlainText(t *testing.T) {
	result := Validate("resume.txt", []byte("Jane Doe\nSoftware Engineer\n"))
	assert.True(t, result.Valid, result.Error)
}

func TestRejectsMissingExtension(t *testing.T) {
	result := Validate("resume", pdfBytes())
	assert.False(t, result.Valid)
}

func TestRejectsDisallowedExtension(t *testing.T) {
	result := Validate("resume.exe", pdfBytes())
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "not allowed")
}

func TestRejectsSpoofedContent(t *testing.T) {
	// .pdf extension but PNG content
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	result := Validate("resume.pdf", png)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "does not match")
}

func TestRejectsTinyFile(t *testing.T) {
	result := Validate("resume.pdf", []byte("%P"))
	assert.False(t, result.Valid)
}
