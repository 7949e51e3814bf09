package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseBand parses a 1-based inclusive band such as "2:5" or "4". When
// letters is set, column names such as "B:D" are accepted as well.
func parseBand(s string, letters bool) (from, to int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("invalid band %q", s)
	}

	bounds := make([]int, len(parts))
	for i, p := range parts {
		if bounds[i], err = parseIndex(strings.TrimSpace(p), letters); err != nil {
			return 0, 0, fmt.Errorf("invalid band %q: %w", s, err)
		}
	}

	from, to = bounds[0], bounds[len(bounds)-1]
	if from > to {
		return 0, 0, fmt.Errorf("invalid band %q: start after end", s)
	}
	return from, to, nil
}

func parseIndex(s string, letters bool) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("index %d is not 1-based", n)
		}
		return n, nil
	}
	if !letters {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return excelize.ColumnNameToNumber(s)
}
