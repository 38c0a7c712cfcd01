package tournament

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/database"
	"github.com/dimfu/bracketeer/handlers/base"
	"github.com/dimfu/bracketeer/models"
)

type TournamentDeleteHandler struct {
	Base *base.BaseAdmin
}

func (h *TournamentDeleteHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "delete",
		Description: "Delete a tournament",
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

func (h *TournamentDeleteHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Base.HasPermit(s, i); err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}

	opts := base.Options(i.ApplicationCommandData().Options)
	opt, ok := opts["id"]
	if !ok {
		base.Respond(base.ERR_GET_TOURNAMENT.Error(), s, i, true)
		return
	}

	store := models.NewStore(database.GetDB())
	if err := store.DeleteTournament(opt.StringValue()); err != nil {
		if errors.Is(err, models.ErrTournamentNotFound) {
			base.Respond(base.ERR_GET_TOURNAMENT.Error(), s, i, true)
			return
		}
		log.Println(err)
		base.Respond(base.ERR_INTERNAL_ERROR.Error(), s, i, true)
		return
	}

	base.Respond("Tournament successfully deleted", s, i, true)
}
