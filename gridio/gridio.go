// Package gridio reads and writes altitude grids as YAML documents.
//
// A document has a single key holding one list per row:
//
//	altitudes:
//	  - [67, 72, 93, 5]
//	  - [38, 53, 71, 48]
//
// JSON is valid YAML, so {"altitudes": [[67, 72], [38, 53]]} loads as well.
package gridio

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lowpoint/grid"
)

// ErrNoAltitudes indicates a document without an altitudes key.
var ErrNoAltitudes = errors.New("gridio: document has no altitudes")

// Document is the on-disk shape of a grid.
type Document struct {
	Altitudes [][]int `yaml:"altitudes"`
}

// Decode reads one document from r and builds a grid from it.
// Grid validation errors (grid.ErrEmptyGrid, grid.ErrNonRectangular) are
// returned wrapped.
func Decode(r io.Reader) (*grid.Grid, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoAltitudes
		}
		return nil, errors.Wrap(err, "gridio: decode")
	}
	if doc.Altitudes == nil {
		return nil, ErrNoAltitudes
	}
	g, err := grid.New(doc.Altitudes)
	if err != nil {
		return nil, errors.Wrap(err, "gridio: build grid")
	}
	return g, nil
}

// Load decodes the grid stored at path.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gridio: open %s", path)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return g, nil
}

// Encode writes g to w as a YAML document with one flow-style row per line.
func Encode(w io.Writer, g *grid.Grid) error {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range g.Values() {
		rowNode := &yaml.Node{}
		if err := rowNode.Encode(row); err != nil {
			return errors.Wrap(err, "gridio: encode row")
		}
		rowNode.Style = yaml.FlowStyle
		rows.Content = append(rows.Content, rowNode)
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "altitudes"},
			rows,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "gridio: encode")
	}
	return errors.Wrap(enc.Close(), "gridio: flush")
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *grid.Grid) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "gridio: write %s", path)
}
