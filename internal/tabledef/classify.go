// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabledef

import "regexp"

// ColumnType is the semantic type of a column's values.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeNumber
	TypeDateTime
	TypePath
)

var typeNames = [...]string{
	TypeText:     "text",
	TypeNumber:   "number",
	TypeDateTime: "datetime",
	TypePath:     "path",
}

func (t ColumnType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

var (
	reColNumber   = regexp.MustCompile(`^-?[0-9][0-9,.]*%?$`)
	reColDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{1,3}[dhms]|<?\d+[dhms](\d+[dhms])*>?|\d{2}:\d{2}(:\d{2})?|\d{1,2}[A-Z][a-z]{2}\d{2,4}|\d+\.\d+[dhms])$`)
	reColPath     = regexp.MustCompile(`[/\\]|^\.\w+$|^[\w.-]+\.\w{1,5}$`)
)

// Classify determines the column type from cell values. A majority (>=60%)
// of non-empty values decides for number and datetime; paths need only 40%.
func Classify(values []string) ColumnType {
	numCount, dateCount, pathCount, total := 0, 0, 0, 0
	for _, val := range values {
		if val == "" || val == "-" || val == "<none>" {
			continue
		}
		total++
		switch {
		case reColNumber.MatchString(val):
			numCount++
		case reColDateTime.MatchString(val):
			dateCount++
		case reColPath.MatchString(val):
			pathCount++
		}
	}
	if total == 0 {
		return TypeText
	}
	if numCount*100/total >= 60 {
		return TypeNumber
	}
	if dateCount*100/total >= 60 {
		return TypeDateTime
	}
	if pathCount*100/total >= 40 {
		return TypePath
	}
	return TypeText
}
