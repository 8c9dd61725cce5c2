package resume

import (
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ExtractFile pulls plain text out of a resume document. Only PDF files are
// recognized. Callers should treat extraction failure as an empty resume
// rather than aborting: the scorers produce a zero score for empty text.
func ExtractFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" {
		return "", fmt.Errorf("unsupported resume format %q: only pdf is accepted", ext)
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("extracting text from %q: %w", path, err)
	}

	return res.Body, nil
}
