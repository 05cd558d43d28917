package extract

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Repair candidates, tried in this fixed order. Each one transforms the
// original document independently; they are never stacked, so a risky fix
// (quote normalization in particular) cannot corrupt the input for the
// others.
var repairs = []struct {
	name  string
	apply func(string) string
}{
	{"quote normalization", normalizeQuotes},
	{"unterminated strings", closeUnterminatedStrings},
	{"structural repair", repairStructure},
	{"jsonrepair", repairLibrary},
}

// normalizeQuotes rewrites single-quoted strings as double-quoted ones.
func normalizeQuotes(doc string) string {
	return strings.ReplaceAll(doc, "'", `"`)
}

// closeUnterminatedStrings appends a closing quote to any line with an odd
// number of double quotes that looks like it opens a string value.
func closeUnterminatedStrings(doc string) string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if strings.Count(line, `"`)%2 == 0 {
			continue
		}
		if strings.Contains(line, `: "`) || strings.Contains(line, `= "`) ||
			strings.Contains(line, `["`) || strings.Contains(line, "{") {
			lines[i] = strings.TrimRight(line, " \t\r") + `"`
		}
	}
	return strings.Join(lines, "\n")
}

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	pyTrue        = regexp.MustCompile(`:\s*True\b`)
	pyFalse       = regexp.MustCompile(`:\s*False\b`)
	pyNone        = regexp.MustCompile(`:\s*None\b`)
)

// repairStructure applies the general structural fixes together: strip raw
// control characters, balance braces/brackets, drop trailing commas, and
// rewrite Python-literal booleans/null.
func repairStructure(doc string) string {
	doc = controlChars.ReplaceAllString(doc, " ")

	if n := strings.Count(doc, "{") - strings.Count(doc, "}"); n > 0 {
		doc += strings.Repeat("}", n)
	}
	if n := strings.Count(doc, "[") - strings.Count(doc, "]"); n > 0 {
		doc += strings.Repeat("]", n)
	}

	doc = trailingComma.ReplaceAllString(doc, "$1")

	doc = pyTrue.ReplaceAllString(doc, ": true")
	doc = pyFalse.ReplaceAllString(doc, ": false")
	doc = pyNone.ReplaceAllString(doc, ": null")

	return doc
}

// repairLibrary is the last-resort candidate: a general-purpose JSON
// repairer for malformations the targeted heuristics above do not cover.
func repairLibrary(doc string) string {
	fixed, err := jsonrepair.JSONRepair(doc)
	if err != nil {
		return doc
	}
	return fixed
}
