package tournament

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/handlers/base"
)

// RouteHandler answers where the winner or loser of a match plays next
// without touching the database.
type RouteHandler struct{}

func (h *RouteHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "route",
		Description: "Show where the winner or loser of a match goes next",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "slots",
				Description: "Bracket size",
				Choices:     sizeChoices,
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "match",
				Description: "Match number",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "direction",
				Description: "Follow the winner or the loser",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "winner", Value: bracket.Winner.String()},
					{Name: "loser", Value: bracket.Loser.String()},
				},
			},
		},
	}
}

func (h *RouteHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := base.Options(i.ApplicationCommandData().Options)

	var (
		slots, match int
		direction    string
	)
	if opt, ok := opts["slots"]; ok {
		slots = int(opt.IntValue())
	}
	if opt, ok := opts["match"]; ok {
		match = int(opt.IntValue())
	}
	if opt, ok := opts["direction"]; ok {
		direction = opt.StringValue()
	}

	msg, err := routeMessage(slots, match, direction)
	if err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}
	base.Respond(msg, s, i, true)
}

func routeMessage(slots, matchID int, direction string) (string, error) {
	dir, err := bracket.ParseDirection(direction)
	if err != nil {
		return "", err
	}

	topo, err := bracket.BuildTopology(slots)
	if err != nil {
		return "", base.ERR_INVALID_SLOTS
	}

	m, err := topo.Match(matchID)
	if errors.Is(err, bracket.ErrMatchNotFound) {
		return "", base.ERR_INVALID_MATCH
	}
	if err != nil {
		return "", err
	}

	dest := m.WinnerTo
	if dir == bracket.Loser {
		dest = m.LoserTo
	}

	where := fmt.Sprintf("%s round %d", m.Segment, m.Round)
	switch dest.Kind {
	case bracket.Advance:
		next, _ := topo.Match(dest.Match)
		return fmt.Sprintf("The %s of match #%d (%s) plays match #%d (%s round %d)",
			dir, m.ID, where, next.ID, next.Segment, next.Round), nil
	case bracket.Terminal:
		return fmt.Sprintf("The %s of match #%d (%s) wins the tournament", dir, m.ID, where), nil
	default:
		return fmt.Sprintf("The %s of match #%d (%s) is eliminated", dir, m.ID, where), nil
	}
}
