package tournament

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/bracket"
	"github.com/dimfu/bracketeer/database"
	"github.com/dimfu/bracketeer/discord/components"
	"github.com/dimfu/bracketeer/handlers/base"
	"github.com/dimfu/bracketeer/models"
)

var sizeChoices = func() []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{}
	for size := 4; size <= 64; size *= 2 {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("Double Elimination (%d players)", size),
			Value: size,
		})
	}
	return choices
}()

type TournamentCreateHandler struct {
	Base *base.BaseAdmin
}

func (h *TournamentCreateHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "create",
		Description: "Create a double elimination tournament",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "slots",
				Description: "Bracket size",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Choices:     sizeChoices,
				Required:    true,
			},
			{
				Name:        "name",
				Description: "Tournament name",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    false,
			},
		},
	}
}

func (h *TournamentCreateHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Base.HasPermit(s, i); err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}

	opts := base.Options(i.ApplicationCommandData().Options)
	name := "New Tournament"
	if opt, ok := opts["name"]; ok && opt.StringValue() != "" {
		name = opt.StringValue()
	}
	slots := 0
	if opt, ok := opts["slots"]; ok {
		slots = int(opt.IntValue())
	}

	store := models.NewStore(database.GetDB())
	t, topo, err := store.CreateTournament(name, slots)
	if err != nil {
		if errors.Is(err, bracket.ErrInvalidSlotCount) {
			base.Respond(base.ERR_INVALID_SLOTS.Error(), s, i, true)
			return
		}
		log.Println(err.Error())
		base.Respond(base.ERR_CREATING_TOURNAMENT.Error(), s, i, true)
		return
	}

	log.Printf("created tournament %s with %d slots", t.ID, t.Slots)
	base.RespondEmbeds(components.BracketEmbeds(t, topo.Matches()), s, i)
}
