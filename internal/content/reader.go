// Package content handles document intake: the file a learner loads is
// validated and flattened to plain text before any AI call is made.
package content

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxFileSize is the largest document Studia accepts.
const MaxFileSize = 10 << 20 // 10 MiB

// allowedExtensions is the type allow-list, keyed by lowercased extension.
var allowedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".json":     true,
	".csv":      true,
}

// Document is a validated, text-flattened input document.
type Document struct {
	// Name is the base name of the source file.
	Name string

	// Text is the extracted plain text sent to the analyzer.
	Text string

	// Size is the size in bytes of the raw file.
	Size int64
}

// ValidationError reports a rejected document before any AI call.
type ValidationError struct {
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot read %s: %s", e.Name, e.Reason)
}

// Read loads and validates the document at path.
func Read(path string) (*Document, error) {
	name := filepath.Base(path)

	if err := checkType(name); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &ValidationError{Name: name, Reason: "file not found"}
	}
	if info.Size() > MaxFileSize {
		return nil, &ValidationError{
			Name:   name,
			Reason: fmt.Sprintf("file is %d bytes, the limit is %d", info.Size(), MaxFileSize),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ValidationError{Name: name, Reason: "file could not be opened"}
	}
	defer f.Close()

	return ReadFrom(f, name)
}

// ReadFrom validates and extracts a document from an open reader.
// The reader is capped at MaxFileSize regardless of the source.
func ReadFrom(r io.Reader, name string) (*Document, error) {
	if err := checkType(name); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, &ValidationError{Name: name, Reason: "file could not be read"}
	}
	if len(raw) > MaxFileSize {
		return nil, &ValidationError{
			Name:   name,
			Reason: fmt.Sprintf("file exceeds the %d byte limit", MaxFileSize),
		}
	}

	if !utf8.Valid(raw) {
		return nil, &ValidationError{Name: name, Reason: "file is not valid UTF-8 text"}
	}

	text, err := extractText(raw, strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return nil, &ValidationError{Name: name, Reason: err.Error()}
	}

	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Name: name, Reason: "file contains no text"}
	}

	return &Document{Name: name, Text: text, Size: int64(len(raw))}, nil
}

func checkType(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return &ValidationError{
			Name:   name,
			Reason: fmt.Sprintf("unsupported file type %q (accepted: .txt, .md, .json, .csv)", ext),
		}
	}
	return nil
}

// extractText flattens structured formats to plain text. Plain text and
// markdown pass through unchanged.
func extractText(raw []byte, ext string) (string, error) {
	switch ext {
	case ".json":
		return flattenJSON(raw)
	case ".csv":
		return flattenCSV(raw)
	default:
		return string(raw), nil
	}
}

// flattenJSON re-indents the document so the analyzer sees readable
// structure; malformed JSON is rejected rather than passed on raw.
func flattenJSON(raw []byte) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("file is not valid JSON")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("file is not valid JSON")
	}
	return buf.String(), nil
}

// flattenCSV joins each record's fields with " | " so rows read as lines.
func flattenCSV(raw []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	var b strings.Builder
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("file is not valid CSV")
		}
		b.WriteString(strings.Join(record, " | "))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
