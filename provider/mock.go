package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock suggestion backend for testing.
type MockProvider struct {
	Translations map[string]string // Map of key to suggested value
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received
}

// NewMockProvider creates a new mock provider with default suggestions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":      "Hola",
			"World":      "Mundo",
			"Shop now":   "Compra ahora",
			"home.title": "Bienvenido",
		},
	}
}

// Translate returns mock suggestions.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	results := make([]string, len(req.Keys))
	for i, key := range req.Keys {
		if suggestion, ok := m.Translations[key]; ok {
			results[i] = suggestion
		} else {
			// Return bracketed text for unknown keys
			results[i] = fmt.Sprintf("[%s]", key)
		}
	}

	return results, nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Translator
var _ Translator = (*MockProvider)(nil)
