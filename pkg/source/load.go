package source

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pchuan98/livecharts/pkg/errors"
)

// Format is a definition file format.
type Format string

// Supported definition formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported definition file %q (want .toml, .yaml or .json)", filepath.Base(path))
}

// Parse decodes a definition. Data references are left unresolved.
func Parse(data []byte, format Format) (*Definition, error) {
	var d Definition
	var err error
	switch format {
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &d)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, errors.New(errors.ErrCodeInvalidDefinition, "unknown toml key %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&d)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown definition format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode %s definition", format)
	}
	return &d, nil
}

// Load reads, decodes and resolves the definition at path, then applies
// defaults and validates it. Spreadsheet paths are relative to the
// definition's directory.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "definition %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	if err := d.Resolve(filepath.Dir(path)); err != nil {
		return nil, err
	}
	d.SetDefaults()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Resolve replaces spreadsheet references with the values they point at.
// dir is the base directory for relative paths; an empty dir rejects
// every reference, which is what the API wants.
func (d *Definition) Resolve(dir string) error {
	for i := range d.Series {
		s := &d.Series[i]
		if s.Data == nil {
			continue
		}
		values, err := d.readNumbers(dir, s.Data)
		if err != nil {
			return errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDefinition), err, "series %q", s.Name)
		}
		s.Values, s.Data = values, nil
	}
	if ref := d.XAxis.LabelsFrom; ref != nil {
		labels, err := d.readStrings(dir, ref)
		if err != nil {
			return errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDefinition), err, "x axis labels")
		}
		d.XAxis.Labels, d.XAxis.LabelsFrom = labels, nil
	}
	return nil
}

func (d *Definition) readNumbers(dir string, ref *DataRef) ([]float64, error) {
	path, err := refPath(dir, ref)
	if err != nil {
		return nil, err
	}
	return ReadColumn(path, ref.Sheet, ref.Column, ref.Header)
}

func (d *Definition) readStrings(dir string, ref *DataRef) ([]string, error) {
	path, err := refPath(dir, ref)
	if err != nil {
		return nil, err
	}
	return ReadLabels(path, ref.Sheet, ref.Column, ref.Header)
}

func refPath(dir string, ref *DataRef) (string, error) {
	if dir == "" {
		return "", errors.New(errors.ErrCodeUnsupported, "spreadsheet references are not allowed here")
	}
	if err := errors.ValidatePath(ref.File); err != nil {
		return "", err
	}
	if err := errors.ValidateColumn(ref.Column); err != nil {
		return "", err
	}
	return filepath.Join(dir, ref.File), nil
}
