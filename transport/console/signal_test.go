package console

import (
	"bytes"
	"strings"
	"syscall"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestCloseSession(t *testing.T) {
	for _, env := range []string{constant.ServerEnvDevelopment, "production"} {
		t.Run(env, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = env

			out := &bytes.Buffer{}
			session := NewSession(strings.NewReader(""), out, &bytes.Buffer{})
			c := New(cfg, NewMenu(), session, mocks.NewOtel())
			c.State = StateRunning

			calls := 0
			c.closeSession(syscall.SIGTERM, func() { calls++ })

			assert.Equal(t, 1, calls)
			assert.Equal(t, StateRunning, c.State)
			assert.Equal(t, "\n", out.String())
		})
	}
}
