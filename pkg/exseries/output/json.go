// Package output serializes converted documents to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Indent is the indentation unit of the written JSON.
const Indent = "    "

// ToJSON serializes v with sorted object keys and 4-space indentation.
// HTML characters are not escaped and no trailing newline is written.
func ToJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FileName derives the output file name from an input file name by
// replacing its extension with ".json".
func FileName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// WriteFile writes data to dir/name, creating dir if needed, and returns
// the written path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
