package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofhir/models"
	"github.com/gofhir/models/pkg/record"
	"github.com/gofhir/models/pkg/xmlfmt"
)

// document is one input with the name it is reported under.
type document struct {
	name string
	data []byte
}

// readInputs expands glob patterns and reads every matching file. "-"
// reads standard input.
func readInputs(stdin io.Reader, args []string) ([]document, error) {
	var docs []document
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			docs = append(docs, document{name: "stdin", data: data})
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", arg)
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, document{name: path, data: data})
		}
	}
	return docs, nil
}

// decode reads a JSON or XML resource into its record type.
func decode(data []byte, opts ...record.DecodeOption) (record.Resource, error) {
	if isXML(data) {
		return xmlfmt.UnmarshalRecord(data, opts...)
	}
	return models.ParseJSON(data, opts...)
}

func isXML(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b == '<'
	}
	return false
}
