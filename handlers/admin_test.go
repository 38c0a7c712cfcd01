package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionID(t *testing.T) {
	cases := []struct {
		in   string
		id   string
		want bool
	}{
		{"<@1234>", "1234", true},
		{"<@!1234>", "1234", true},
		{"1234", "", false},
		{"<@>", "", false},
		{"<@1234", "", false},
	}
	for _, tc := range cases {
		id, ok := mentionID(tc.in)
		assert.Equal(t, tc.want, ok, tc.in)
		assert.Equal(t, tc.id, id, tc.in)
	}
}
