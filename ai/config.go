// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Provider selects the embedding backend.
type Provider string

const (
	// ProviderOpenAI uses an OpenAI-compatible embedding API.
	ProviderOpenAI Provider = "openai"
	// ProviderLocal skips the remote API entirely; every text is embedded
	// with the deterministic fallback.
	ProviderLocal Provider = "local"
)

// Config holds configuration for the embedding provider.
type Config struct {
	// Provider selects between the remote API and local-only mode.
	// Default: ProviderOpenAI when an API key is set, ProviderLocal otherwise.
	Provider Provider

	// Host is the base URL for an OpenAI-compatible embedding API.
	// Empty means the default OpenAI endpoint.
	// Example: "http://localhost:11434/v1" for a local server.
	Host string

	// APIKey authenticates against the embedding API.
	// Local OpenAI-compatible servers usually accept any value.
	APIKey string

	// Model is the embedding model identifier.
	// Example: "text-embedding-3-small", "embeddinggemma"
	Model string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider sets the embedding provider.
func WithProvider(provider Provider) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithHost sets the embedding service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the embedding API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the embedding model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// DefaultConfig returns a Config with sensible defaults: the OpenAI provider
// with its standard endpoint and small embedding model.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Model:    "text-embedding-3-small",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithModel("embeddinggemma"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. A non-empty
// Host gets the /v1 suffix required by most OpenAI-compatible APIs (Ollama,
// LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Provider {
	case ProviderOpenAI, ProviderLocal:
	default:
		return errors.New("ai config: Provider must be openai or local")
	}
	if c.Provider == ProviderOpenAI && c.Model == "" {
		return errors.New("ai config: Model is required for the openai provider")
	}
	return nil
}
