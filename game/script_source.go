package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxScriptSize bounds how much of a remote script is read
const maxScriptSize = 1 << 20

// ScriptSource loads opponent scripts from a local path or an http(s) URL
type ScriptSource struct {
	httpClient *http.Client
}

// NewScriptSource creates a loader with a bounded HTTP timeout
func NewScriptSource() *ScriptSource {
	return &ScriptSource{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Load returns the script code at location
func (s *ScriptSource) Load(ctx context.Context, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return s.fetch(ctx, location)
	}

	code, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(code), nil
}

func (s *ScriptSource) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("script fetch failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}

// LoadScriptOpponent loads, compiles and wraps the script at location.
// The deadband tracker from cfg is the fallback.
func LoadScriptOpponent(ctx context.Context, location string, cfg Config, logger *log.Logger) (*ScriptOpponent, error) {
	code, err := NewScriptSource().Load(ctx, location)
	if err != nil {
		return nil, err
	}
	runner, err := NewScriptRunner(location, code)
	if err != nil {
		return nil, fmt.Errorf("load opponent script %s: %w", location, err)
	}
	return NewScriptOpponent(runner, TrackingOpponent{Deadband: cfg.AIDeadband}, logger), nil
}
