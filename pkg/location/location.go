// Package location maps issue expressions such as Claim.item[0].sequence
// back to line and column positions in the JSON document they came from.
package location

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofhir/models/pkg/issue"
)

var errNotFound = errors.New("element not found")

// segment is one step of an expression: an object key, or an array index
// when index is not negative.
type segment struct {
	key   string
	index int
}

// Find returns the position of the element an expression names, or nil
// when the element does not occur in data.
func Find(data []byte, expr string) *issue.Location {
	loc, exact := locate(data, expr)
	if !exact {
		return nil
	}
	return loc
}

// Nearest returns the position of the element an expression names or, if
// it is absent (a missing required field, say), of its deepest enclosing
// element that is present. It returns nil only when data is not a JSON
// object.
func Nearest(data []byte, expr string) *issue.Location {
	loc, _ := locate(data, expr)
	return loc
}

// Locator returns a function suitable for issue.Result.EnrichLocations.
func Locator(data []byte) func(string) *issue.Location {
	return func(expr string) *issue.Location {
		return Nearest(data, expr)
	}
}

func locate(data []byte, expr string) (*issue.Location, bool) {
	root := skipSpace(data, 0)
	if root >= len(data) || data[root] != '{' {
		return nil, false
	}
	segs := parse(expr)
	best := root

	dec := json.NewDecoder(bytes.NewReader(data))
	for _, seg := range segs {
		var (
			off int
			err error
		)
		if seg.index >= 0 {
			off, err = element(dec, seg.index)
		} else {
			off, err = key(dec, seg.key)
		}
		if err != nil {
			return position(data, best), false
		}
		best = skipSpace(data, off)
	}
	return position(data, best), true
}

// parse splits an expression into segments. A leading resource type is
// dropped and so is a choice marker ("value[x]").
func parse(expr string) []segment {
	head, rest, found := strings.Cut(expr, ".")
	if head != "" && head[0] >= 'A' && head[0] <= 'Z' && !strings.Contains(head, "[") {
		if !found {
			return nil
		}
		expr = rest
	}

	var segs []segment
	for _, part := range strings.Split(expr, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			segs = append(segs, segment{key: name, index: -1})
		}
		for rest != "" {
			idx, after, ok := strings.Cut(rest, "]")
			if !ok {
				break
			}
			if n, err := strconv.Atoi(idx); err == nil {
				segs = append(segs, segment{index: n})
			}
			_, rest, _ = strings.Cut(after, "[")
		}
	}
	return segs
}

// key reads the object at the decoder position up to the member named k,
// leaving the decoder before its value. It returns the member's offset.
func key(dec *json.Decoder, k string) (int, error) {
	if err := expect(dec, '{'); err != nil {
		return 0, err
	}
	for dec.More() {
		off := int(dec.InputOffset())
		tok, err := dec.Token()
		if err != nil {
			return 0, err
		}
		if name, _ := tok.(string); name == k {
			return off, nil
		}
		if err := skip(dec); err != nil {
			return 0, err
		}
	}
	return 0, errNotFound
}

// element reads the array at the decoder position up to element n.
func element(dec *json.Decoder, n int) (int, error) {
	if err := expect(dec, '['); err != nil {
		return 0, err
	}
	for i := 0; dec.More(); i++ {
		off := int(dec.InputOffset())
		if i == n {
			return off, nil
		}
		if err := skip(dec); err != nil {
			return 0, err
		}
	}
	return 0, errNotFound
}

func expect(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != d {
		return errNotFound
	}
	return nil
}

// skip consumes one complete value.
func skip(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}

// skipSpace advances past whitespace and the separators the decoder leaves
// in front of the next token.
func skipSpace(data []byte, off int) int {
	for off < len(data) {
		switch data[off] {
		case ' ', '\t', '\r', '\n', ',', ':':
			off++
		default:
			return off
		}
	}
	return off
}

// position converts a byte offset to a 1-based line and column.
func position(data []byte, off int) *issue.Location {
	loc := &issue.Location{Line: 1, Column: 1}
	for i := 0; i < off && i < len(data); i++ {
		if data[i] == '\n' {
			loc.Line++
			loc.Column = 1
		} else {
			loc.Column++
		}
	}
	return loc
}
