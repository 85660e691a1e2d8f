package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readScores parses pairwise measurement lines of the form
//
//	ElementX ElementY Value
//
// delimited by spaces, tabs or plus signs, and returns the flat list of
// raw values in file order (row-major over ordered pairs). Blank lines
// are skipped. The caller converts similarities to distances afterwards.
func readScores(r io.Reader) ([]float64, error) {
	var raw []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ' ' || c == '\t' || c == '+'
		})
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want \"ElementX ElementY Value\", got %q", line, text)
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad value %q: %w", line, fields[2], err)
		}
		raw = append(raw, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return raw, nil
}
