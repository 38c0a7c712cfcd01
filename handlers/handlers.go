package handlers

import (
	"github.com/dimfu/bracketeer/handlers/base"
	"github.com/dimfu/bracketeer/handlers/tournament"
)

var CommandHandlers = []base.Command{
	&PingHandler{},
	&AdminHandler{},
	&tournament.TournamentCreateHandler{Base: base.GetBaseAdmin()},
	&tournament.TournamentViewHandler{},
	&tournament.TournamentDeleteHandler{Base: base.GetBaseAdmin()},
	&tournament.RouteHandler{},
}
