package tournament

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/database"
	"github.com/dimfu/bracketeer/discord/components"
	"github.com/dimfu/bracketeer/handlers/base"
	"github.com/dimfu/bracketeer/models"
)

type TournamentViewHandler struct{}

func (h *TournamentViewHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "bracket",
		Description: "Show the bracket of a tournament",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "id",
				Description: "Tournament id",
				Required:    true,
			},
		},
	}
}

func (h *TournamentViewHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := base.Options(i.ApplicationCommandData().Options)
	opt, ok := opts["id"]
	if !ok {
		base.Respond(base.ERR_GET_TOURNAMENT.Error(), s, i, true)
		return
	}

	store := models.NewStore(database.GetDB())
	t, matches, err := store.GetTournament(opt.StringValue())
	if err != nil {
		if errors.Is(err, models.ErrTournamentNotFound) {
			base.Respond(base.ERR_GET_TOURNAMENT.Error(), s, i, true)
			return
		}
		log.Println(err)
		base.Respond(base.ERR_INTERNAL_ERROR.Error(), s, i, true)
		return
	}

	base.RespondEmbeds(components.BracketEmbeds(t, matches), s, i)
}
