package llm

import "context"

// MockClient permite tests sin llamar a un proveedor real. Si Responses
// tiene elementos, cada llamada consume el siguiente (la ultima se repite);
// si no, se devuelve Response fija.
type MockClient struct {
	Response  string
	Responses []string
	Err       error

	Calls        int
	LastPrompt   string
	LastImageB64 string
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.next(), m.Err
}

func (m *MockClient) GenerateVision(ctx context.Context, prompt, imageB64 string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastImageB64 = imageB64
	return m.next(), m.Err
}

func (m *MockClient) next() string {
	if len(m.Responses) == 0 {
		return m.Response
	}
	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx]
}
