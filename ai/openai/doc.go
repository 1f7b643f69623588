// Package openai implements ai.Embedder against OpenAI-compatible
// embedding APIs (OpenAI itself, Ollama, LocalAI, vLLM and other servers
// that speak the same protocol).
package openai
