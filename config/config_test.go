package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"WORDSNAKE_UI", "WORDSNAKE_SPEED", "WORDSNAKE_SEED", "WORDS_FILE", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI != UIWindow || cfg.Speed != 150 || cfg.Seed != 0 || cfg.LogLevel != "info" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.TickInterval() != 150*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval())
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("WORDSNAKE_UI", "term")
	t.Setenv("WORDSNAKE_SPEED", "90")
	t.Setenv("WORDSNAKE_SEED", "7")

	cfg, err := Load([]string{"-speed", "60", "-autopilot"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI != UITerm {
		t.Errorf("UI = %q", cfg.UI)
	}
	if cfg.Speed != 60 {
		t.Errorf("flag did not override env: speed = %d", cfg.Speed)
	}
	if cfg.Seed != 7 || !cfg.Autopilot {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"zero speed", nil, []string{"-speed", "0"}, "speed"},
		{"unknown ui", nil, []string{"-ui", "web"}, "unknown ui"},
		{"bad env int", map[string]string{"WORDSNAKE_SPEED": "fast"}, nil, "WORDSNAKE_SPEED"},
		{"bad flag", nil, []string{"-nope"}, "parse flags"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WORDSNAKE_SPEED", "")
			t.Setenv("WORDSNAKE_UI", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
