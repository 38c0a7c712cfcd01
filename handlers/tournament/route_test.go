package tournament

import (
	"testing"

	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/handlers/base"
	"github.com/stretchr/testify/assert"
)

func TestRouteMessage(t *testing.T) {
	cases := []struct {
		name      string
		slots     int
		match     int
		direction string
		want      string
		err       error
	}{
		{"top winner", 8, 1, "winner", "The winner of match #1 (top round 1) plays match #5 (top round 2)", nil},
		{"top loser", 8, 6, "loser", "The loser of match #6 (top round 2) plays match #10 (bottom round 2)", nil},
		{"top final", 8, 7, "winner", "The winner of match #7 (top round 3) plays match #14 (champion round 1)", nil},
		{"bottom loser", 8, 9, "loser", "The loser of match #9 (bottom round 1) is eliminated", nil},
		{"reset winner", 8, 15, "winner", "The winner of match #15 (champion round 2) wins the tournament", nil},
		{"bad slots", 6, 1, "winner", "", base.ERR_INVALID_SLOTS},
		{"bad match", 8, 16, "winner", "", base.ERR_INVALID_MATCH},
		{"bad direction", 8, 1, "draw", "", bracket.ErrInvalidDirection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := routeMessage(tc.slots, tc.match, tc.direction)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
