package validation

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestValidateInspectionPhoto_AcceptsPNG(t *testing.T) {
	header := &multipart.FileHeader{Filename: "foto.png", Size: int64(len(pngHeader))}
	file := bytes.NewReader(pngHeader)

	err := ValidateInspectionPhoto(header, file, 10)
	require.NoError(t, err)

	// The reader must be rewound for the subsequent store.
	pos, _ := file.Seek(0, 1)
	assert.Equal(t, int64(0), pos)
}

func TestValidateInspectionPhoto_RejectsOversize(t *testing.T) {
	header := &multipart.FileHeader{Filename: "foto.png", Size: 11 * 1024 * 1024}
	file := bytes.NewReader(pngHeader)

	err := ValidateInspectionPhoto(header, file, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestValidateInspectionPhoto_RejectsNonImage(t *testing.T) {
	content := []byte("#!/bin/sh\necho nope\n")
	header := &multipart.FileHeader{Filename: "foto.jpg", Size: int64(len(content))}

	err := ValidateInspectionPhoto(header, bytes.NewReader(content), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
