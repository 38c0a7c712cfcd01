package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/dimfu/bracketeer/config"
	"github.com/dimfu/bracketeer/handlers"
	"github.com/dimfu/bracketeer/handlers/base"
)

func ensureRole(dg *discordgo.Session, gid string) (*discordgo.Role, error) {
	st, err := dg.GuildRoles(gid)
	if err != nil {
		return nil, err
	}

	if role := base.FindManagerRole(st); role != nil {
		return role, nil
	}

	r, err := dg.GuildRoleCreate(
		gid,
		&discordgo.RoleParams{
			Name: base.ManagerRole,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return r, nil
}

// Init runs the bot until ctx is cancelled. It returns immediately when no
// bot token is configured.
func Init(ctx context.Context) {
	config := config.GetEnv()
	if config.DISCORD_BOT_TOKEN == "" {
		log.Println("no discord token configured, bot disabled")
		return
	}

	dg, err := discordgo.New("Bot " + config.DISCORD_BOT_TOKEN)
	if err != nil {
		log.Fatal(err.Error())
	}

	commands := make(map[string]base.Command, len(handlers.CommandHandlers))
	for _, handler := range handlers.CommandHandlers {
		commands[handler.Command().Name] = handler
	}

	// create role when bot joins new guild
	dg.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		_, err := ensureRole(s, g.ID)
		if err != nil {
			log.Printf("Failed to create role in guild %s: %v", g.ID, err)
		}
	})

	// listens to which command is being used, and do the handler
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if handler, ok := commands[i.ApplicationCommandData().Name]; ok {
			handler.Handler(s, i)
		}
	})

	err = dg.Open()
	if err != nil {
		log.Fatalf("error opening connection with discord: %v", err)
	}
	defer dg.Close()

	// register commands
	for _, handler := range handlers.CommandHandlers {
		cmd := handler.Command()
		_, err := dg.ApplicationCommandCreate(dg.State.User.ID, "", cmd)
		if err != nil {
			log.Printf("error creating command %s: %v", cmd.Name, err)
			continue
		}
	}

	log.Println("bot is now running")
	<-ctx.Done()
}
