package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/handlers/base"
)

type PingHandler struct{}

func (p *PingHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Ping to get ponged",
	}
}

func (p *PingHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	base.Respond(fmt.Sprintf("Pong! %vms", s.HeartbeatLatency().Milliseconds()), s, i, true)
}
