// Package extract isolates and parses the JSON payload embedded in a raw
// text-generation response. Extraction always yields a candidate string;
// parsing falls back to a fixed chain of repair heuristics when the
// candidate is not strict JSON.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// Document returns the best JSON candidate from a raw generator response:
// the inner text of the first fenced code block if one exists, otherwise the
// whole response. Leftover fence markers are stripped. It never fails; the
// candidate may still not parse.
func Document(response string) string {
	doc := response
	if m := fencedBlock.FindStringSubmatch(response); m != nil {
		doc = m[1]
	}
	doc = strings.TrimSpace(doc)
	doc = strings.TrimPrefix(doc, "```json")
	doc = strings.TrimPrefix(doc, "```")
	doc = strings.TrimSuffix(doc, "```")
	return strings.TrimSpace(doc)
}

// Record extracts the JSON candidate from response and parses it into a
// generic record. A candidate that parses as-is never touches the repair
// chain. Otherwise each repair candidate is derived from the original
// document independently and the first one that parses wins. When all
// candidates fail the returned error is a *ParseError describing the
// original parse failure.
func Record(response string) (map[string]any, error) {
	doc := Document(response)

	var rec map[string]any
	origErr := json.Unmarshal([]byte(doc), &rec)
	if origErr == nil {
		return rec, nil
	}

	for _, r := range repairs {
		var repaired map[string]any
		if err := json.Unmarshal([]byte(r.apply(doc)), &repaired); err == nil {
			return repaired, nil
		}
	}

	return nil, newParseError(doc, origErr)
}

// ParseError reports that no parseable JSON could be recovered from a
// response. Line and Column locate the original parse failure in the
// extracted document; Snippet is the surrounding text.
type ParseError struct {
	Line    int
	Column  int
	Snippet string

	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no parseable JSON in response (line %d, column %d, near %q): %v",
		e.Line, e.Column, e.Snippet, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

func newParseError(doc string, err error) *ParseError {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset > int64(len(doc)) {
		offset = int64(len(doc))
	}

	line, col := 1, 1
	for _, b := range []byte(doc[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	start := offset - 50
	if start < 0 {
		start = 0
	}
	end := offset + 50
	if end > int64(len(doc)) {
		end = int64(len(doc))
	}

	return &ParseError{Line: line, Column: col, Snippet: doc[start:end], err: err}
}
