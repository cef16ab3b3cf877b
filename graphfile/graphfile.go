// Package graphfile loads adjacency-matrix graph documents from disk.
//
// A document carries the weight matrix, the start vertex and optional vertex
// labels. The same keys are used in every supported format:
//
//	# sample.toml
//	start = 0
//	labels = ["A", "B", "C"]
//	weights = [
//	  [0, 2, 0],
//	  [2, 0, 3],
//	  [0, 3, 0],
//	]
//
// TOML, YAML and JSON are recognized by file extension. Unknown keys are
// rejected so that typos ("weigths") fail loudly instead of producing an
// empty graph.
package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primstep/matrix"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("graphfile: unknown format")
	ErrUnknownKey    = errors.New("graphfile: unknown key")
	ErrBadLabels     = errors.New("graphfile: invalid labels")
)

// Document is a decoded graph file.
type Document struct {
	Start   int         `toml:"start" yaml:"start" json:"start"`
	Weights [][]float64 `toml:"weights" yaml:"weights" json:"weights"`
	Labels  []string    `toml:"labels,omitempty" yaml:"labels,omitempty" json:"labels,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load graph file %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load graph file %q: %w", path, err)
	}

	return doc, nil
}

// Decode reads a document in the given format from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		// BurntSushi/toml ignores unknown keys; MetaData.Undecoded lists them.
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: %q: %w", undecoded[0].String(), ErrUnknownKey)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			// With KnownFields, yaml.v3 reports an unknown key as a *yaml.TypeError
			// entry "field X not found in type graphfile.Document".
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) && anyContains(typeErr.Errors, "not found in type") {
				return nil, fmt.Errorf("decode yaml: %v: %w", err, ErrUnknownKey)
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			// encoding/json has no typed error for DisallowUnknownFields; the
			// message is `json: unknown field "X"`.
			if strings.HasPrefix(err.Error(), "json: unknown field") {
				return nil, fmt.Errorf("decode json: %v: %w", err, ErrUnknownKey)
			}
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return &doc, nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Graph validates the labels and builds the immutable matrix.
func (d *Document) Graph() (*matrix.Graph, error) {
	g, err := matrix.NewGraph(d.Weights)
	if err != nil {
		return nil, err
	}
	if len(d.Labels) == 0 {
		return g, nil
	}
	if len(d.Labels) != g.Order() {
		return nil, fmt.Errorf("%d labels for %d vertices: %w", len(d.Labels), g.Order(), ErrBadLabels)
	}
	seen := make(map[string]struct{}, len(d.Labels))
	for i, l := range d.Labels {
		if l == "" {
			return nil, fmt.Errorf("label %d is empty: %w", i, ErrBadLabels)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("label %q repeated: %w", l, ErrBadLabels)
		}
		seen[l] = struct{}{}
	}

	return g, nil
}

// Label returns the label of v, or v in decimal when unlabeled.
func (d *Document) Label(v int) string {
	if v >= 0 && v < len(d.Labels) {
		return d.Labels[v]
	}

	return strconv.Itoa(v)
}

func anyContains(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}

	return false
}
