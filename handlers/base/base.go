package base

import (
	"errors"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

const ManagerRole = "Tournament Manager"

var (
	ERR_INTERNAL_ERROR      = errors.New("Something went wrong while executing this instruction")
	ERR_CREATING_TOURNAMENT = errors.New("Something went wrong while creating tournament")
	ERR_GENERATE_BRACKET    = errors.New("Error occured when generating tournament bracket")
	ERR_GET_TOURNAMENT      = errors.New("Cannot find this tournament record")
	ERR_INVALID_SLOTS       = errors.New("Bracket size must be a power of two, at least 2")
	ERR_INVALID_MATCH       = errors.New("That match does not exist in this bracket")
	ERR_MISSING_ROLE        = errors.New("Can't find tournament role")
	ERR_NO_PERMISSION       = errors.New("Insufficent permission to use this command")
)

var (
	instance *BaseAdmin
	once     sync.Once
)

type Command interface {
	Command() *discordgo.ApplicationCommand
	Handler(s *discordgo.Session, i *discordgo.InteractionCreate)
}

type BaseAdmin struct{}

func GetBaseAdmin() *BaseAdmin {
	once.Do(func() {
		instance = &BaseAdmin{}
	})
	return instance
}

// Options indexes the options of a command interaction by name.
func Options(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func Respond(r string, s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: r,
		},
	}

	if ephemeral {
		response.Data.Flags = discordgo.MessageFlagsEphemeral
	}

	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		log.Printf("error responding to interaction: %v", err)
	}
}

func RespondEmbeds(embeds []*discordgo.MessageEmbed, s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:          embeds,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	})
	if err != nil {
		log.Printf("error responding to interaction: %v", err)
	}
}

func SendError(err error, s *discordgo.Session, i *discordgo.InteractionCreate) {
	log.Println(err)
	Respond(ERR_INTERNAL_ERROR.Error(), s, i, true)
}

// FindManagerRole looks up the Tournament Manager role of a guild.
func FindManagerRole(roles []*discordgo.Role) *discordgo.Role {
	for _, role := range roles {
		if role.Name == ManagerRole {
			return role
		}
	}
	return nil
}

func (h *BaseAdmin) HasPermit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member == nil {
		return ERR_NO_PERMISSION
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		return err
	}
	return checkPermit(i.Member, roles)
}

func checkPermit(member *discordgo.Member, roles []*discordgo.Role) error {
	// skips check if user has admin access
	if member.Permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator {
		return nil
	}

	tm := FindManagerRole(roles)
	if tm == nil {
		return ERR_MISSING_ROLE
	}

	for _, ur := range member.Roles {
		if ur == tm.ID {
			return nil
		}
	}

	return ERR_NO_PERMISSION
}
