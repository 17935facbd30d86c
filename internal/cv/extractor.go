package cv

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat rejects a file type tag outside SupportedFormats.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrNoText means the document decoded but yielded no text content.
	ErrNoText = errors.New("no text could be extracted from file")
)

// SupportedFormats lists the accepted file type tags.
func SupportedFormats() []string {
	return []string{"pdf", "docx", "doc", "txt"}
}

func IsSupportedFormat(fileType string) bool {
	tag := strings.ToLower(fileType)
	for _, f := range SupportedFormats() {
		if tag == f {
			return true
		}
	}
	return false
}

// EstimateDecodedSize estimates the decoded byte size of a base64 payload from its
// encoded length (base64 carries ~33% overhead).
func EstimateDecodedSize(encodedLen int) int64 {
	return int64(encodedLen) * 3 / 4
}

// ValidateFileSize reports whether the estimated decoded size of the encoded payload
// fits under maxMB mebibytes. The check runs before any decode work.
func ValidateFileSize(encoded string, maxMB int64) bool {
	return EstimateDecodedSize(len(encoded)) <= maxMB*1024*1024
}

// DecodeBase64 decodes an uploaded file payload.
func DecodeBase64(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 content: %w", err)
	}
	return data, nil
}

// ExtractText extracts the text content of a decoded document. The result is either
// the full text or an error; there are no partial results. An empty extraction is
// reported as ErrNoText so callers reject the upload instead of prompting on nothing.
func ExtractText(data []byte, fileType string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(fileType) {
	case "txt":
		text = string(data)
	case "pdf":
		text, err = extractPDFText(data)
	case "docx", "doc":
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileType)
	}

	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return strings.TrimSpace(textBuilder.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	return strings.TrimSpace(text), nil
}
