package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-stock-exact/pkg/normalize"
)

func ptr(s string) *string { return &s }

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		raw    *string
		retain bool
		want   string
	}{
		{"absent", nil, false, "N/A"},
		{"absent with suffix flag", nil, true, "N/A"},
		{"empty string", ptr(""), true, "N/A"},
		{"rupee stripped", ptr("₹1,234"), false, "1,234"},
		{"rupee anywhere", ptr(" ₹ 12₹.5 "), false, "12.5"},
		{"whitespace trimmed", ptr("\n\t 42.1 \n"), false, "42.1"},
		{"suffix preserved once", ptr("₹500 Cr."), true, "500 Cr."},
		{"trailing space around suffix", ptr("₹500 Cr. "), true, "500 Cr."},
		{"suffix appended after trailing text", ptr("Cr. 500"), true, "Cr. 500 Cr."},
		{"no suffix when absent from source", ptr("500"), true, "500"},
		{"suffix kept verbatim for other fields", ptr("₹500 Cr."), false, "500 Cr."},
		{"suffix match is case sensitive", ptr("500 cr."), true, "500 cr."},
		{"only whitespace", ptr("   "), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Clean(tt.raw, tt.retain))
		})
	}
}
