// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabledef

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadDelimited reads a header line followed by data lines separated by
// delim. A zero delim picks comma or tab from the input, preferring tab.
// Fields may be quoted as in RFC 4180.
func ReadDelimited(r io.Reader, delim byte) (*Definition, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read delimited input")
	}

	def := &Definition{}
	if len(lines) == 0 {
		return def, nil
	}
	if delim == 0 {
		delim = DetectDelimiter(lines)
	}

	for _, name := range splitDelimitedLine(lines[0], delim) {
		def.Columns = append(def.Columns, ColumnDef{Name: name})
	}
	for _, ln := range lines[1:] {
		cells := splitDelimitedLine(ln, delim)
		for len(def.Columns) < len(cells) {
			def.Columns = append(def.Columns, ColumnDef{})
		}
		def.Rows = append(def.Rows, RowDef{Cells: cells})
	}
	return def, nil
}

// DetectDelimiter returns tab or comma, whichever splits most lines into the
// same number of fields. Tab wins ties and is the fallback.
func DetectDelimiter(lines []string) byte {
	best, bestScore := byte('\t'), consistency(lines, '\t')
	if s := consistency(lines, ','); s > bestScore {
		best = ','
	}
	return best
}

// consistency is the share of lines carrying the most common non-zero
// delimiter count.
func consistency(lines []string, delim byte) float64 {
	freq := map[int]int{}
	for _, ln := range lines {
		freq[countDelimitersOutsideQuotes(ln, delim)]++
	}
	bestFreq := 0
	for cnt, f := range freq {
		if cnt > 0 && f > bestFreq {
			bestFreq = f
		}
	}
	if len(lines) == 0 {
		return 0
	}
	return float64(bestFreq) / float64(len(lines))
}

func countDelimitersOutsideQuotes(line string, delim byte) int {
	count := 0
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			inQuote = !inQuote
		case !inQuote && line[i] == delim:
			count++
		}
	}
	return count
}

// splitDelimitedLine splits line at delim outside of double quotes. Doubled
// quotes inside a quoted field stand for one quote.
func splitDelimitedLine(line string, delim byte) []string {
	var fields []string
	var field strings.Builder
	inQuote := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuote:
			if ch != '"' {
				field.WriteByte(ch)
				continue
			}
			if i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == delim:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}
	return append(fields, field.String())
}
