package csv

import (
	"bufio"
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"hermannm.dev/wrap"
)

var DefaultDelimitersToCheck = []rune{',', ';', '\t', ' ', '|'}

// DeduceFieldDelimiter picks the field delimiter of the given file by scanning its first lines.
//
// A delimiter that splits the first line into fields containing all of headerColumns wins over
// every other candidate. Otherwise (or to break ties between such delimiters), a delimiter that
// occurs the same number of times on every line is preferred, then the one occurring most often.
// Falls back to ',' when no candidate occurs at all.
//
// The file is reset to its start before returning.
func DeduceFieldDelimiter(
	csvFile io.ReadSeeker,
	maxRowsToCheck int,
	delimitersToCheck []rune,
	headerColumns []string,
) (delimiter rune, err error) {
	defer func() {
		if _, seekErr := csvFile.Seek(0, io.SeekStart); seekErr != nil {
			err = wrap.Error(seekErr, "failed to reset CSV reader after deducing field delimiter")
		}
	}()

	if len(delimitersToCheck) == 0 {
		delimitersToCheck = DefaultDelimitersToCheck
	}

	candidates := make([]delimiterCandidate, 0, len(delimitersToCheck))
	for _, delimiter := range delimitersToCheck {
		candidates = append(candidates, delimiterCandidate{delimiter: delimiter})
	}

	scanner := bufio.NewScanner(csvFile)
	for lineIndex := 0; lineIndex < maxRowsToCheck && scanner.Scan(); lineIndex++ {
		line := scanner.Text()
		if lineIndex == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		for i := range candidates {
			candidates[i].countLine(line)
			if lineIndex == 0 {
				candidates[i].splitsHeader = splitsIntoColumns(
					line, candidates[i].delimiter, headerColumns,
				)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, wrap.Error(err, "failed to scan CSV lines")
	}

	var best *delimiterCandidate
	for i, candidate := range candidates {
		if candidate.maxPerLine == 0 && !candidate.splitsHeader {
			continue
		}
		if best == nil || candidate.betterThan(*best) {
			best = &candidates[i]
		}
	}

	if best == nil {
		// None of the candidates occur, so the file has a single column.
		return ',', nil
	}
	return best.delimiter, nil
}

type delimiterCandidate struct {
	delimiter    rune
	minPerLine   int
	maxPerLine   int
	linesCounted int
	splitsHeader bool
}

func (candidate *delimiterCandidate) countLine(line string) {
	count := strings.Count(line, string(candidate.delimiter))

	if candidate.linesCounted == 0 || count < candidate.minPerLine {
		candidate.minPerLine = count
	}
	if count > candidate.maxPerLine {
		candidate.maxPerLine = count
	}
	candidate.linesCounted++
}

func (candidate delimiterCandidate) consistent() bool {
	return candidate.maxPerLine > 0 && candidate.minPerLine == candidate.maxPerLine
}

func (candidate delimiterCandidate) betterThan(other delimiterCandidate) bool {
	if candidate.splitsHeader != other.splitsHeader {
		return candidate.splitsHeader
	}
	if candidate.consistent() != other.consistent() {
		return candidate.consistent()
	}
	// An inconsistent delimiter missing from some lines is likely part of a field value.
	if !candidate.consistent() && (candidate.minPerLine > 0) != (other.minPerLine > 0) {
		return candidate.minPerLine > 0
	}
	return candidate.maxPerLine > other.maxPerLine
}

func splitsIntoColumns(line string, delimiter rune, columns []string) bool {
	if len(columns) == 0 {
		return false
	}

	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	fields, err := reader.Read()
	if err != nil {
		return false
	}

	for _, column := range columns {
		if !slices.Contains(fields, column) {
			return false
		}
	}
	return true
}
