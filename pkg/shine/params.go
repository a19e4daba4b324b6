package shine

import (
	"math"
	"strconv"
	"strings"

	"github.com/jedahan/Shine/pkg/engine"
)

// ParamType tags one of the built-in parameter kinds. The set is closed;
// the dispatcher resolves each tag through paramParsers.
type ParamType int

const (
	TypeString ParamType = iota
	TypeClient
	TypeClients
	TypeNumber
	TypeBoolean
	TypeTeam
)

// String returns the parameter type name used in operator messages.
func (t ParamType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeClient:
		return "client"
	case TypeClients:
		return "clients"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeTeam:
		return "team"
	default:
		return "unknown"
	}
}

// Param declares one command parameter.
type Param struct {
	Type ParamType

	// Optional lets the parameter run with no token. Without it, a
	// missing token aborts the dispatch even when Default is set.
	Optional bool

	// Default is handed back when the token is absent (and, for numbers,
	// when the token does not parse). A func() any value is invoked each
	// time instead of being returned directly.
	Default any

	// Min and Max clamp number values; either may be nil for no bound.
	Min, Max *float64

	// Round rounds a number to the nearest integer; the parsed value is
	// then an int rather than a float64.
	Round bool

	// MaxLength truncates string values to this many characters
	// (0 = unlimited).
	MaxLength int

	// TakeRestOfLine makes a string parameter absorb every remaining
	// token, space-joined. Only valid on the last declared parameter.
	TakeRestOfLine bool

	// IgnoreCanTarget skips targeting authorization for client and
	// clients parameters.
	IgnoreCanTarget bool

	// Error overrides the generic bad-argument notice for this parameter.
	Error string
}

// Float is a convenience for filling Param.Min and Param.Max.
func Float(v float64) *float64 { return &v }

// paramParser converts one raw token into a typed value. present is false
// when the caller ran out of tokens; ok is false when no value could be
// produced (which the dispatcher turns into an error for required
// parameters and into a nil argument for optional ones).
type paramParser func(eng engine.Engine, actor engine.Client, tok string, present bool, p *Param) (value any, ok bool)

var paramParsers = map[ParamType]paramParser{
	TypeString:  parseString,
	TypeClient:  parseClient,
	TypeClients: parseClients,
	TypeNumber:  parseNumber,
	TypeBoolean: parseBoolean,
	TypeTeam:    parseTeam,
}

// defaultValue resolves a Param's Default, invoking producer funcs.
func defaultValue(p *Param) (any, bool) {
	if p.Default == nil {
		return nil, false
	}
	if fn, ok := p.Default.(func() any); ok {
		return fn(), true
	}
	return p.Default, true
}

func parseString(_ engine.Engine, _ engine.Client, tok string, present bool, p *Param) (any, bool) {
	if !present {
		return defaultValue(p)
	}
	return truncate(tok, p.MaxLength), true
}

// truncate cuts s to max characters; max <= 0 means unlimited.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// parseClient resolves one client. "^" is the invoking client itself.
func parseClient(eng engine.Engine, actor engine.Client, tok string, present bool, p *Param) (any, bool) {
	if !present {
		return defaultValue(p)
	}
	if tok == "^" {
		if actor == nil {
			return nil, false
		}
		return actor, true
	}
	c := eng.FindClient(tok)
	if c == nil {
		return nil, false
	}
	return c, true
}

// parseClients resolves a set of clients: "*" is everyone, "@spectate",
// "@marine" and "@alien" are team rosters, anything else a comma-separated
// list of single-client tokens. List entries that resolve to nothing are
// skipped, so the set may come back empty.
func parseClients(eng engine.Engine, actor engine.Client, tok string, present bool, p *Param) (any, bool) {
	if !present {
		return defaultValue(p)
	}

	switch strings.ToLower(tok) {
	case "*":
		return eng.AllClients(), true
	case "@spectate":
		return eng.TeamClients(engine.TeamSpectate), true
	case "@marine":
		return eng.TeamClients(engine.TeamMarines), true
	case "@alien":
		return eng.TeamClients(engine.TeamAliens), true
	}

	var out []engine.Client
	for _, entry := range strings.Split(tok, ",") {
		if entry == "" {
			continue
		}
		if entry == "^" {
			if actor != nil {
				out = append(out, actor)
			}
			continue
		}
		if c := eng.FindClient(entry); c != nil {
			out = append(out, c)
		}
	}
	return out, true
}

func parseNumber(_ engine.Engine, _ engine.Client, tok string, present bool, p *Param) (any, bool) {
	if !present {
		return defaultValue(p)
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(n) {
		// NaN compares false against any bound and would sail past the
		// clamps below.
		return defaultValue(p)
	}
	if p.Min != nil && n < *p.Min {
		n = *p.Min
	}
	if p.Max != nil && n > *p.Max {
		n = *p.Max
	}
	if p.Round {
		return int(math.Round(n)), true
	}
	return n, true
}

// parseBoolean treats anything as true except a token that parses to the
// number zero or the literal "false".
func parseBoolean(_ engine.Engine, _ engine.Client, tok string, present bool, p *Param) (any, bool) {
	if !present {
		return defaultValue(p)
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return n != 0, true
	}
	return tok != "false", true
}

// parseTeam accepts a team number (clamped to the playable teams) or a name
// containing "marine" or "alien". There is no default fallback; an
// unrecognized token stays absent.
func parseTeam(_ engine.Engine, _ engine.Client, tok string, present bool, _ *Param) (any, bool) {
	if !present {
		return nil, false
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil && !math.IsNaN(n) {
		if n < 1 {
			n = 1
		}
		if n > 2 {
			n = 2
		}
		return engine.TeamID(n), true
	}
	lower := strings.ToLower(tok)
	switch {
	case strings.Contains(lower, "marine"):
		return engine.TeamMarines, true
	case strings.Contains(lower, "alien"):
		return engine.TeamAliens, true
	}
	return nil, false
}
