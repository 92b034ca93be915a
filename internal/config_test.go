package internal

import (
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.App.HTTP.Address() != ":8080" {
		t.Errorf("address = %q", cfg.App.HTTP.Address())
	}
	if !cfg.Data.Watch {
		t.Error("watch should default on")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 9090}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 9090 should pass: %v", err)
	}
}

func TestDataConfig_PathRequired(t *testing.T) {
	cfg := DataConfig{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty path should fail validation")
	}
}

func TestMediumConfig_Enabled(t *testing.T) {
	cfg := MediumConfig{}
	if cfg.Enabled() {
		t.Error("empty handle should disable enrichment")
	}
	cfg.Handle = "dav3dd"
	if !cfg.Enabled() {
		t.Error("handle should enable enrichment")
	}
}

func TestMediumConfig_RejectsEmptyProxy(t *testing.T) {
	cfg := MediumConfig{Proxies: []string{"https://proxy.example.com/?u=", ""}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("blank proxy entry should fail validation")
	}
}

func TestFullConfig_DataValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Data.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch data error")
	}
}
