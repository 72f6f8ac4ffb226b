// Package tools provides the capability registry and the external tool
// clients (LLM, web search) that instruments consume.
package tools

import (
	"context"
	"fmt"
	"strings"
)

// Capability strings negotiated between instruments and tools.
const (
	CapabilityReasoning = "reasoning"
	CapabilityWebSearch = "web_search"
	CapabilityVision    = "vision"
	CapabilitySynthesis = "synthesis"
	CapabilityAnalysis  = "analysis"
)

// Manifest is static metadata describing a tool.
type Manifest struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	ConfigKeys   []string `json:"config_keys"`
}

// Tool is the contract every registered tool satisfies.
type Tool interface {
	Name() string
	Capabilities() []string
	Manifest() Manifest
	HealthCheck(ctx context.Context) error
}

// CapabilityError reports required capabilities that no registered tool
// provides.
type CapabilityError struct {
	Missing []string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("no tool registered for required capabilities: %s", strings.Join(e.Missing, ", "))
}

// ToolError wraps a failed call so callers can attribute it to a tool
// without inspecting the message.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ImageInput is a single image for multimodal requests. SourceType is
// "base64" or "url"; Data holds the raw base64 payload (no data URI
// prefix) or the URL respectively.
type ImageInput struct {
	SourceType string
	MediaType  string
	Data       string
}
