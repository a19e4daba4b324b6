package shine

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestMetrics drives one success, one denial and one suppressed chat command
// through an instrumented dispatcher and scrapes the handler. Metrics live on
// the process-wide default registry, so everything runs in this one test.
func TestMetrics(t *testing.T) {
	env := newTestEnv(t)
	m := NewMetrics(env.reg, time.Now())
	disp := NewDispatcher(env.reg, env.eng, NewLogger(env.conf), m)
	bridge := NewChatBridge(env.reg, disp, env.conf, m)
	env.registerProbe(t, "sh_probe", "probe", false, true)

	disp.RunCommand(env.admin, "sh_probe")
	disp.RunCommand(env.bob, "sh_probe")
	bridge.HandleChat(env.admin, "!probe")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"shine_commands_run_total 2",
		`shine_command_aborts_total{reason="permission"} 1`,
		"shine_chat_commands_total 1",
		"shine_chat_commands_suppressed_total 1",
		"shine_commands_registered 1",
		"shine_uptime_seconds",
		"shine_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q in:\n%s", want, body)
		}
	}
}
