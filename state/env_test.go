package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/JohnAlbin/styled-media-queries/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() did not panic on missing environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestUptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(time.Millisecond)
	if env.Uptime() <= 0 {
		t.Error("Uptime() not positive")
	}
}

func TestRedirectStdLog(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Cfg = &config.Config{Version: 1}
	env.Log = zaptest.NewLogger(t)

	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("RedirectStdLog() did not install restore function")
	}
	env.RestoreStdLog()
}
