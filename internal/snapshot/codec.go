package snapshot

import (
	"bytes"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format selects the serialized form of an exported snapshot.
type Format string

const (
	// FormatJSON is the default export format.
	FormatJSON Format = "json"
	// FormatYAML writes the same structure as YAML.
	FormatYAML Format = "yaml"
)

// ReportBaseName is the fixed export file name without extension.
const ReportBaseName = "system_report"

// indent is the indentation width of both formats.
const indent = 2

// json is configured to behave exactly like encoding/json so key order follows
// struct field order and output is stable between runs.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SupportedFormats lists the accepted format names.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// ParseFormat converts a user-supplied name into a Format.
// The empty string selects JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (supported: %s)",
			name, strings.Join(SupportedFormats(), ", "))
	}
}

// FileName returns the fixed export file name for the format.
func FileName(f Format) string {
	if f == FormatYAML {
		return ReportBaseName + ".yaml"
	}
	return ReportBaseName + ".json"
}

// Marshal renders the snapshot in canonical text form: stable key order,
// two-space indentation and a trailing newline.
func Marshal(s *Snapshot, f Format) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot serialize an empty snapshot")
	}

	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to encode snapshot as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish yaml document: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(s, "", strings.Repeat(" ", indent))
		if err != nil {
			return nil, fmt.Errorf("failed to encode snapshot as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

// Unmarshal parses data written by Marshal back into a Snapshot.
func Unmarshal(data []byte, f Format) (*Snapshot, error) {
	var s Snapshot
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode yaml snapshot: %w", err)
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode json snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
	return &s, nil
}
