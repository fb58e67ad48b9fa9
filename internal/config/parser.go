package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format is a definition document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", iddlerrors.NewParseError(path, 0, fmt.Errorf("unsupported extension %q", filepath.Ext(path)))
	}
}

// ParseDocument loads a definition file from disk, validates it, and returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iddlerrors.NewParseError(path, 0, err)
	}

	doc, err := DecodeDocument(data, format)
	if err != nil {
		return nil, iddlerrors.NewParseError(path, extractLine(err), err)
	}
	doc.Path = path

	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeDocument decodes data without validating it.
func DecodeDocument(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var tomlErr toml.ParseError
	if errors.As(err, &tomlErr) {
		return tomlErr.Position.Line
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
