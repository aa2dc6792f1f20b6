package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.AppPort != "8080" || cfg.MaxRequestsPerMin != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ScheduleCacheTTL != 10*time.Minute || cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected durations: ttl=%s shutdown=%s", cfg.ScheduleCacheTTL, cfg.ShutdownTimeout)
	}
	if cfg.StrictTimeValidation || cfg.CacheEnabled {
		t.Fatal("strict validation and cache should be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_PORT", "9090")
	v.Set("STRICT_TIME_VALIDATION", true)
	v.Set("SCHEDULE_CACHE_TTL", "90s")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.AppPort != "9090" || !cfg.StrictTimeValidation || cfg.ScheduleCacheTTL != 90*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"", []string{"*"}},
		{"http://a.test, http://b.test ,", []string{"http://a.test", "http://b.test"}},
	}
	for _, tt := range tests {
		if got := (Config{CORSAllowOrigins: tt.in}).AllowedOrigins(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AllowedOrigins(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
