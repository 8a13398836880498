package notify

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "bot")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_FROM", "")

	cfg := ConfigFromEnv()
	if cfg.Host != "mail.example.com" || cfg.Port != 2525 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.From != "bot" {
		t.Errorf("From = %q, want fallback to user", cfg.From)
	}
	if !cfg.Complete() {
		t.Error("config with host/user/pass should be complete")
	}
}

func TestConfigFromEnv_DefaultPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "not-a-port")

	if cfg := ConfigFromEnv(); cfg.Port != 587 {
		t.Errorf("Port = %d, want default 587", cfg.Port)
	}
}

func TestConfig_Incomplete(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"missing pass", Config{Host: "h", User: "u"}},
		{"missing host", Config{User: "u", Pass: "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.Complete() {
				t.Error("config should be incomplete")
			}
			if err := Send(tt.cfg, "to@example.com", "subject", "body"); err == nil {
				t.Error("Send with incomplete config must fail")
			}
		})
	}
}
