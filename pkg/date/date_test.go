package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "iso date", input: "2024-01-15", want: "2024"},
		{name: "timestamp", input: "2023-12-31T23:59:59Z", want: "2023"},
		{name: "bare year", input: "1999", want: "1999"},
		{name: "lower bound", input: "1900", want: "1900"},
		{name: "upper bound", input: "2100", want: "2100"},
		{name: "partial date", input: "2024-", want: "2024"},
		{name: "trailing text", input: "2024 some other text", want: "2024"},
		{name: "longer number", input: "20242", want: "2024"},
		{name: "empty", input: "", want: ""},
		{name: "not a date", input: "invalid-date", want: ""},
		{name: "too short", input: "202", want: ""},
		{name: "before range", input: "1899", want: ""},
		{name: "after range", input: "2101", want: ""},
		{name: "zero year", input: "0001", want: ""},
		{name: "year in the middle", input: "hello 2024 world", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Year(tt.input))
		})
	}
}
