package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/handlers/base"
)

type AdminHandler struct{}

var defaultPermission = int64(discordgo.PermissionAdministrator)

func (p *AdminHandler) Command() *discordgo.ApplicationCommand {
	target := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "target",
			Description: "Target User",
			Required:    true,
		},
	}
	return &discordgo.ApplicationCommand{
		Name:                     "admin",
		Description:              "Manage permission to manage tournaments",
		DefaultMemberPermissions: &defaultPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "add",
				Description: "Add tournament manager role to a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     target,
			},
			{
				Name:        "remove",
				Description: "Remove tournament manager role from a user",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options:     target,
			},
		},
	}
}

// mentionID strips the <@...> wrapper of a user mention.
func mentionID(mention string) (string, bool) {
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", false
	}
	id := strings.TrimPrefix(mention[2:len(mention)-1], "!")
	return id, id != ""
}

func (p *AdminHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	if len(data.Options) == 0 || len(data.Options[0].Options) == 0 {
		log.Println("empty options")
		return
	}

	subcmd := data.Options[0]
	usrid, ok := mentionID(subcmd.Options[0].StringValue())
	if !ok {
		base.Respond("Cannot add invalid user, use @user to properly target user", s, i, true)
		return
	}
	st, err := s.User(usrid)
	if err != nil {
		base.Respond("Cannot add invalid user, use @user to properly target user", s, i, true)
		return
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		base.SendError(err, s, i)
		return
	}

	tm := base.FindManagerRole(roles)
	if tm == nil {
		base.Respond(base.ERR_MISSING_ROLE.Error(), s, i, false)
		return
	}

	var ret string
	switch subcmd.Name {
	case "add":
		if err := s.GuildMemberRoleAdd(i.GuildID, st.ID, tm.ID); err != nil {
			ret = err.Error()
			break
		}
		ret = fmt.Sprintf("<@%s> is now tournament manager", st.ID)
	case "remove":
		if err := s.GuildMemberRoleRemove(i.GuildID, st.ID, tm.ID); err != nil {
			ret = err.Error()
			break
		}
		ret = fmt.Sprintf("<@%s> is no longer tournament manager", st.ID)
	default:
		return
	}

	base.Respond(ret, s, i, false)
}
