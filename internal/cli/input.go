// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/gauss"
)

// systemFile is the on-disk form of a linear system. b is either a vector or
// a list of rows. JSON input is accepted since it is valid YAML.
type systemFile struct {
	A [][]float64 `yaml:"a"`
	B yaml.Node   `yaml:"b"`
}

// readSystemFile loads a system from path.
func readSystemFile(path string) (a, b gauss.Array, err error) {
	f, err := os.Open(path)
	if err != nil {
		return a, b, errors.Wrap(err, "open system file")
	}
	defer f.Close()

	return decodeSystem(f)
}

// decodeSystem parses a system document.
func decodeSystem(r io.Reader) (a, b gauss.Array, err error) {
	var doc systemFile
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil {
		return a, b, errors.Wrap(err, "decode system")
	}
	if doc.A == nil {
		return a, b, errors.New("decode system: missing key \"a\"")
	}
	a = gauss.Rows(doc.A)

	switch {
	case doc.B.Kind == 0:
		return a, b, errors.New("decode system: missing key \"b\"")
	case doc.B.Kind == yaml.SequenceNode && len(doc.B.Content) > 0 && doc.B.Content[0].Kind == yaml.SequenceNode:
		var rows [][]float64
		if err = doc.B.Decode(&rows); err != nil {
			return a, b, errors.Wrap(err, "decode b rows")
		}
		b = gauss.Rows(rows)
	default:
		var vec []float64
		if err = doc.B.Decode(&vec); err != nil {
			return a, b, errors.Wrap(err, "decode b vector")
		}
		b = gauss.Vector(vec...)
	}

	return a, b, nil
}
