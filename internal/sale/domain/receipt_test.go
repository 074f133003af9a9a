package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "RCP-000123", ReceiptNumber(123))
	assert.Equal(t, "RCP-000001", ReceiptNumber(1))
	assert.Equal(t, "RCP-1234567", ReceiptNumber(1234567))
}

func TestParseReceiptNumber(t *testing.T) {
	cases := []struct {
		in   string
		id   int64
		ok   bool
		name string
	}{
		{in: "RCP-000123", id: 123, ok: true, name: "canonical"},
		{in: "rcp 123", id: 123, ok: true, name: "loose formatting"},
		{in: "123", id: 123, ok: true, name: "bare digits"},
		{in: "RCP-", ok: false, name: "no digits"},
		{in: "", ok: false, name: "empty"},
		{in: "RCP-000000", ok: false, name: "zero id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ParseReceiptNumber(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.id, id)
			}
		})
	}
}
