package shine

import (
	"strconv"
	"strings"

	"github.com/jedahan/Shine/pkg/engine"
)

// Dispatcher executes console commands against a registry: permission gate,
// per-parameter parsing, targeting authorization, audit logging, handler
// invocation. It runs entirely on the host's main event thread.
type Dispatcher struct {
	reg     *Registry
	eng     engine.Engine
	log     *Logger
	metrics *Metrics
}

// NewDispatcher wires a dispatcher to reg and attaches it to the registry's
// console hooks, so hooked commands fired by the engine run through it.
// logger and metrics may be nil.
func NewDispatcher(reg *Registry, eng engine.Engine, logger *Logger, metrics *Metrics) *Dispatcher {
	d := &Dispatcher{reg: reg, eng: eng, log: logger, metrics: metrics}
	reg.dispatch = d.RunCommand
	return d
}

// RunCommand executes consoleCmd for actor with raw argument tokens. A nil
// actor is the server console. Unknown names are ignored. Every failure
// path notifies the actor privately and returns before the handler runs;
// there is no partial invocation.
func (d *Dispatcher) RunCommand(actor engine.Client, consoleCmd string, tokens ...string) {
	cmd := d.reg.commands[consoleCmd]
	if cmd == nil {
		return
	}

	if !cmd.NoPermission && !d.eng.HasPermission(actor, consoleCmd) {
		d.tell(actor, "You do not have permission to use %s.", consoleCmd)
		d.metrics.commandAbort("permission")
		return
	}

	parsed := make([]any, len(cmd.Params))
	for i := range cmd.Params {
		p := &cmd.Params[i]

		tok, present := "", false
		if i < len(tokens) {
			tok, present = tokens[i], true
		}

		// A missing token on a required parameter is an argument
		// mismatch outright; Default only applies to optional
		// parameters.
		if !present && !p.Optional {
			d.argError(actor, p, i, consoleCmd)
			d.metrics.commandAbort("arguments")
			return
		}

		parse, known := paramParsers[p.Type]
		if !known {
			d.log.Print("Invalid parameters for %s: unknown parameter type %d (argument %d).", consoleCmd, p.Type, i+1)
			d.tell(actor, "This command is misconfigured; please report it to a server admin.")
			d.metrics.commandAbort("misconfigured")
			return
		}

		value, ok := parse(d.eng, actor, tok, present, p)
		if !ok {
			if !p.Optional {
				switch p.Type {
				case TypeClient:
					d.tell(actor, "No matching player found.")
				case TypeClients:
					d.tell(actor, "No matching players found.")
				default:
					d.argError(actor, p, i, consoleCmd)
				}
				d.metrics.commandAbort("arguments")
				return
			}
			value = nil
		}

		if p.Type == TypeString && p.TakeRestOfLine {
			if i != len(cmd.Params)-1 {
				d.log.Print("Invalid parameters for %s: a take-rest-of-line argument must be the last one (argument %d).", consoleCmd, i+1)
				d.tell(actor, "This command is misconfigured; please report it to a server admin.")
				d.metrics.commandAbort("misconfigured")
				return
			}
			if present && i+1 < len(tokens) {
				s, _ := value.(string)
				value = truncate(s+" "+strings.Join(tokens[i+1:], " "), p.MaxLength)
			}
		}

		if p.Type == TypeClient && !p.IgnoreCanTarget {
			if target, isClient := value.(engine.Client); isClient && !d.eng.CanTarget(actor, target) {
				d.tell(actor, "You cannot target %s.", target.Name())
				d.metrics.commandAbort("targeting")
				return
			}
		}

		if p.Type == TypeClients && !p.IgnoreCanTarget {
			if set, isSet := value.([]engine.Client); isSet {
				var allowed []engine.Client
				for _, target := range set {
					if d.eng.CanTarget(actor, target) {
						allowed = append(allowed, target)
					}
				}
				if len(allowed) == 0 {
					d.tell(actor, "No matching players found.")
					d.metrics.commandAbort("targeting")
					return
				}
				value = allowed
			}
		}

		parsed[i] = value
	}

	d.log.Print("%s[%s] ran command %s with arguments: %s",
		actorName(actor), actorID(actor), consoleCmd, strings.Join(tokens, ", "))
	d.metrics.commandRun()

	d.invoke(cmd, actor, parsed)
}

// invoke calls the handler, containing any panic so a buggy command cannot
// take the host down with it.
func (d *Dispatcher) invoke(cmd *Command, actor engine.Client, parsed []any) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Print("Command %s failed: %v", cmd.ConsoleCmd, r)
			d.tell(actor, "The command failed. A server admin should check the log.")
			d.metrics.commandAbort("handler")
		}
	}()
	cmd.Handler(actor, parsed...)
}

// argError sends the parameter's custom error text, or the generic
// bad-argument notice.
func (d *Dispatcher) argError(actor engine.Client, p *Param, i int, consoleCmd string) {
	if p.Error != "" {
		d.tell(actor, "%s", p.Error)
		return
	}
	d.tell(actor, "Incorrect argument #%d to %s.", i+1, consoleCmd)
}

// tell sends a private notice to the actor; the server console gets it on
// the operator log instead.
func (d *Dispatcher) tell(actor engine.Client, format string, args ...any) {
	if actor == nil {
		d.log.Print(format, args...)
		return
	}
	d.eng.Notify(actor, format, args...)
}

func actorName(c engine.Client) string {
	if c == nil {
		return "Console"
	}
	return c.Name()
}

func actorID(c engine.Client) string {
	if c == nil {
		return "N/A"
	}
	return strconv.FormatInt(c.ID(), 10)
}
