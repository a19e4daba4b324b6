package shine

import (
	"log"

	"github.com/jedahan/Shine/pkg/engine"
)

// RegisterBaseCommands installs the stock admin command set on the
// dispatcher's registry. Every handler acts only through the engine
// interface, so the set runs identically against any host.
func RegisterBaseCommands(d *Dispatcher) {
	register := func(consoleCmd string, chatCmds []string, handler Handler, noPermission, silent bool) *Command {
		cmd, err := d.reg.Register(consoleCmd, chatCmds, handler, noPermission, silent)
		if err != nil {
			log.Printf("WARNING: Could not register %s: %v", consoleCmd, err)
			return &Command{}
		}
		return cmd
	}

	kick := register("sh_kick", []string{"kick"}, d.cmdKick, false, true)
	kick.AddParam(Param{Type: TypeClient, Error: "Please specify a player to kick."})
	kick.AddParam(Param{Type: TypeString, Optional: true, TakeRestOfLine: true, Default: "", MaxLength: 128})
	kick.SetHelp("<player> [reason] - kicks the player from the server")

	setteam := register("sh_setteam", []string{"setteam", "st"}, d.cmdSetTeam, false, true)
	setteam.AddParam(Param{Type: TypeClients, Error: "Please specify the player(s) to move."})
	setteam.AddParam(Param{Type: TypeTeam, Error: "Please specify marine or alien."})
	setteam.SetHelp("<players> <team> - moves the player(s) onto the given team")

	csay := register("sh_csay", []string{"csay"}, d.cmdCSay, false, true)
	csay.AddParam(Param{Type: TypeString, TakeRestOfLine: true, MaxLength: 256, Error: "Please specify a message to send."})
	csay.SetHelp("<message> - broadcasts an admin message to all players")

	who := register("sh_who", []string{"who"}, d.cmdWho, false, true)
	who.SetHelp("- lists connected players with id and team")

	help := register("sh_help", []string{"help"}, d.cmdHelp, true, true)
	help.AddParam(Param{Type: TypeString, Optional: true, Default: ""})
	help.SetHelp("[command] - shows help for a command, or lists all commands")
}

// cmdKick disconnects the target, telling them why first.
func (d *Dispatcher) cmdKick(actor engine.Client, args ...any) {
	target := args[0].(engine.Client)
	reason, _ := args[1].(string)

	if reason == "" {
		d.eng.Notify(target, "You were kicked from the server.")
	} else {
		d.eng.Notify(target, "You were kicked from the server: %s", reason)
	}
	d.eng.Kick(target, reason)
	d.tell(actor, "Kicked %s.", target.Name())
}

// cmdSetTeam moves every targetable client in the set onto a team.
func (d *Dispatcher) cmdSetTeam(actor engine.Client, args ...any) {
	targets := args[0].([]engine.Client)
	team := args[1].(engine.TeamID)

	for _, c := range targets {
		d.eng.MoveToTeam(c, team)
	}
	d.tell(actor, "Moved %d player(s) to the %s.", len(targets), team)
}

// cmdCSay broadcasts an admin message to every player.
func (d *Dispatcher) cmdCSay(actor engine.Client, args ...any) {
	msg, _ := args[0].(string)
	d.eng.Notify(nil, "[Admin] %s", msg)
}

// cmdWho lists the connected players.
func (d *Dispatcher) cmdWho(actor engine.Client, args ...any) {
	clients := d.eng.AllClients()
	d.tell(actor, "%d player(s) connected:", len(clients))
	for _, c := range clients {
		d.tell(actor, "  %s[%d] - %s", c.Name(), c.ID(), c.Team())
	}
}

// cmdHelp shows one command's help or lists everything registered.
func (d *Dispatcher) cmdHelp(actor engine.Client, args ...any) {
	name, _ := args[0].(string)
	if name != "" {
		cmd := d.reg.Lookup(name)
		if cmd == nil {
			cmd = d.reg.ChatLookup(name)
		}
		if cmd == nil {
			d.tell(actor, "No command named %q.", name)
			return
		}
		d.tell(actor, "%s %s", cmd.ConsoleCmd, cmd.Help)
		return
	}
	for _, cmd := range d.reg.Commands() {
		d.tell(actor, "%s %s", cmd.ConsoleCmd, cmd.Help)
	}
}
