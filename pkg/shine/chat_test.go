package shine

import (
	"strings"
	"testing"

	"github.com/jedahan/Shine/pkg/engine"
)

func TestHandleChat_SilentAliasRunsAndSuppresses(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_kick", "kick", false, true,
		Param{Type: TypeClient})

	out := env.bridge.HandleChat(env.admin, "!kick bob")

	if p.calls != 1 {
		t.Fatalf("expected the aliased command to run, calls=%d", p.calls)
	}
	if c := p.args[0].(engine.Client); c.Name() != "Bob" {
		t.Errorf("expected resolved client Bob, got %v", c.Name())
	}
	if out != "" {
		t.Errorf("expected silent command chat to be suppressed, got %q", out)
	}
}

func TestHandleChat_PlainMessagePassesThrough(t *testing.T) {
	env := newTestEnv(t)
	env.registerProbe(t, "sh_kick", "kick", false, true)

	out := env.bridge.HandleChat(env.bob, "hello there")

	if out != "hello there" {
		t.Errorf("expected pass-through, got %q", out)
	}
	if len(env.eng.Notices) != 0 {
		t.Errorf("plain chat produced notices: %v", env.eng.Notices)
	}
}

func TestHandleChat_UnknownAliasPassesThrough(t *testing.T) {
	env := newTestEnv(t)

	out := env.bridge.HandleChat(env.bob, "!dance")

	if out != "!dance" {
		t.Errorf("expected unknown alias to pass through, got %q", out)
	}
}

func TestHandleChat_NonSilentEchoes(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, false)

	out := env.bridge.HandleChat(env.bob, "!x")

	if p.calls != 1 {
		t.Fatalf("expected command to run, calls=%d", p.calls)
	}
	if out != "!x" {
		t.Errorf("non-silent command should keep the chat echo, got %q", out)
	}
}

func TestHandleChat_SlashForcesSuppression(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, false)

	out := env.bridge.HandleChat(env.bob, "/x")

	if p.calls != 1 {
		t.Fatalf("expected command to run, calls=%d", p.calls)
	}
	if out != "" {
		t.Errorf("\"/\" invocation must suppress the echo, got %q", out)
	}
}

func TestHandleChat_GlobalSilentSetting(t *testing.T) {
	env := newTestEnv(t)
	env.conf.SilentChatCommands = true
	p := env.registerProbe(t, "sh_x", "x", true, false)

	out := env.bridge.HandleChat(env.bob, "!x")

	if p.calls != 1 {
		t.Fatalf("expected command to run, calls=%d", p.calls)
	}
	if out != "" {
		t.Errorf("global silent setting must suppress the echo, got %q", out)
	}
}

func TestHandleChat_ArgumentsForwarded(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, true,
		Param{Type: TypeString},
		Param{Type: TypeString, Optional: true, TakeRestOfLine: true, Default: ""})

	env.bridge.HandleChat(env.bob, "!x say hello world")

	if p.calls != 1 {
		t.Fatalf("expected command to run, calls=%d", p.calls)
	}
	if p.args[0] != "say" || p.args[1] != "hello world" {
		t.Errorf("arguments not forwarded from chat: %v", p.args)
	}
}

func TestHandleChat_AliasCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, true)

	env.bridge.HandleChat(env.bob, "!X")

	if p.calls != 1 {
		t.Errorf("expected alias match regardless of case, calls=%d", p.calls)
	}
}

func TestHandleChat_AnyDirectiveCharacterByDefault(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, true)

	env.bridge.HandleChat(env.bob, ".x")

	if p.calls != 1 {
		t.Errorf("expected any non-alphanumeric prefix to act as a directive, calls=%d", p.calls)
	}
}

func TestHandleChat_RestrictedDirectives(t *testing.T) {
	env := newTestEnv(t)
	env.conf.ChatDirectives = "!"
	p := env.registerProbe(t, "sh_x", "x", true, true)

	out := env.bridge.HandleChat(env.bob, "/x")

	if p.calls != 0 {
		t.Errorf("\"/\" should not be a directive when restricted to \"!\"")
	}
	if out != "/x" {
		t.Errorf("expected pass-through under restricted directives, got %q", out)
	}
}

func TestHandleChat_EmptyAndBlankMessages(t *testing.T) {
	env := newTestEnv(t)

	if out := env.bridge.HandleChat(env.bob, ""); out != "" {
		t.Errorf("empty message changed: %q", out)
	}
	if out := env.bridge.HandleChat(env.bob, "   "); out != "   " {
		t.Errorf("blank message changed: %q", out)
	}
}

func TestHandleChat_DeniedCommandStillSuppressed(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", false, true)

	// Bob has no grants: the dispatch denies, but the invocation is still
	// a command attempt and the echo stays suppressed.
	out := env.bridge.HandleChat(env.bob, "!x")

	if p.calls != 0 {
		t.Errorf("unprivileged chat command ran")
	}
	if out != "" {
		t.Errorf("expected suppression for a denied silent command, got %q", out)
	}
	if notice := env.lastNoticeTo(env.bob); !strings.Contains(notice, "permission") {
		t.Errorf("expected a private permission notice, got: %s", notice)
	}
}

func TestHandleChat_SetConfigSwapsBehavior(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerProbe(t, "sh_x", "x", true, false)

	if out := env.bridge.HandleChat(env.bob, "!x"); out != "!x" {
		t.Fatalf("expected echo before the config swap, got %q", out)
	}

	reloaded := DefaultConfig()
	reloaded.SilentChatCommands = true
	env.bridge.SetConfig(reloaded)

	if out := env.bridge.HandleChat(env.bob, "!x"); out != "" {
		t.Errorf("expected suppression after the config swap, got %q", out)
	}
	if p.calls != 2 {
		t.Errorf("expected the command to run both times, calls=%d", p.calls)
	}
}
