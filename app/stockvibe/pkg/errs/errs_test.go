package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationErrorNamesSetting(t *testing.T) {
	err := fmt.Errorf("summarize: %w", &ConfigurationError{Setting: "AI_API_KEY"})

	if !IsConfiguration(err) {
		t.Fatalf("IsConfiguration() = false for %v", err)
	}
	if !strings.Contains(err.Error(), "AI_API_KEY") {
		t.Errorf("error %q does not name the missing setting", err.Error())
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want string
	}{
		{"status", &UpstreamError{Provider: "NewsAPI", StatusCode: 401, Body: `{"status":"error"}`}, `NewsAPI error 401: {"status":"error"}`},
		{"transport", &UpstreamError{Provider: "AI", Err: errors.New("dial tcp: timeout")}, "AI request failed: dial tcp: timeout"},
		{"payload status", &UpstreamError{Provider: "NewsAPI", StatusCode: 200, Status: "error", Body: `{"status":"error"}`}, "NewsAPI returned status: error"},
		{"payload status detail", &UpstreamError{Provider: "NewsAPI", StatusCode: 200, Status: "error", Detail: "rateLimited: slow down"}, "NewsAPI returned status: error (rateLimited: slow down)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !IsUpstream(fmt.Errorf("wrapped: %w", tt.err)) {
				t.Errorf("IsUpstream() = false")
			}
		})
	}
}

func TestRawAIResponse(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := fmt.Errorf("analysis: %w", &AIResponseError{Raw: "not json {", Err: cause})

	raw, ok := RawAIResponse(err)
	if !ok {
		t.Fatal("RawAIResponse() ok = false")
	}
	if raw != "not json {" {
		t.Errorf("raw = %q", raw)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false")
	}
	if _, ok := RawAIResponse(errors.New("plain")); ok {
		t.Errorf("RawAIResponse(plain) ok = true")
	}
}
