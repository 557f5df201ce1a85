package model

import "testing"

func TestCrawlResult_DerivedAccessors(t *testing.T) {
	r := CrawlResult{
		SuccessfulPages: []PageRecord{{URL: "https://example.com"}, {URL: "https://example.com/a"}},
		FailedURLs:      []string{"https://example.com/bad"},
		StartTimeMs:     1000,
		EndTimeMs:       1500,
	}

	if got := r.TotalPagesCrawled(); got != 2 {
		t.Errorf("TotalPagesCrawled() = %d, want 2", got)
	}
	if got := r.TotalFailures(); got != 1 {
		t.Errorf("TotalFailures() = %d, want 1", got)
	}
	if got := r.DurationMs(); got != 500 {
		t.Errorf("DurationMs() = %d, want 500", got)
	}
}

func TestCrawlConfig_Validate(t *testing.T) {
	valid := CrawlConfig{MaxDepth: 1, MaxPages: 10, TimeoutMs: 1000, WorkerCount: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on a valid config returned %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*CrawlConfig)
		field  string
	}{
		{"negative max depth", func(c *CrawlConfig) { c.MaxDepth = -1 }, "MaxDepth"},
		{"zero max pages", func(c *CrawlConfig) { c.MaxPages = 0 }, "MaxPages"},
		{"negative max pages", func(c *CrawlConfig) { c.MaxPages = -5 }, "MaxPages"},
		{"zero timeout", func(c *CrawlConfig) { c.TimeoutMs = 0 }, "TimeoutMs"},
		{"zero workers", func(c *CrawlConfig) { c.WorkerCount = 0 }, "WorkerCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want a ConfigurationError for field %s", tt.field)
			}
			cerr, ok := err.(*ConfigurationError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ConfigurationError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("ConfigurationError.Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}
