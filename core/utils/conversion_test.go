package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	due := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "MAIN", "MAIN"},
		{"bytes", []byte("BOOK"), "BOOK"},
		{"int64", int64(-3), "-3"},
		{"int", 6, "6"},
		{"int32", int32(0), "0"},
		{"uint64", uint64(12), "12"},
		{"time", due, "2024-03-09"},
		{"zero time", time.Time{}, ""},
		{"nil time pointer", (*time.Time)(nil), ""},
		{"time pointer", &due, "2024-03-09"},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}
