package llmprovider

import (
	"context"
	"testing"

	"morning-assistant/pkg/deepseek"
	"morning-assistant/pkg/gemini"
	"morning-assistant/pkg/qwen"
)

type mockGeminiClient struct {
	lastReq  *gemini.Request
	response *gemini.Response
	err      error
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockGeminiClient) Model() string {
	return "gemini-2.0-flash"
}

type mockDeepSeekClient struct {
	lastReq  *deepseek.Request
	response *deepseek.Response
	err      error
}

func (m *mockDeepSeekClient) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockDeepSeekClient) Model() string {
	return "deepseek-chat"
}

type mockQwenClient struct {
	lastReq  *qwen.Request
	response *qwen.Response
	err      error
}

func (m *mockQwenClient) GenerateContent(ctx context.Context, req *qwen.Request) (*qwen.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockQwenClient) Model() string {
	return "qwen-plus"
}

func TestGeminiAdapter_RoleMapping(t *testing.T) {
	client := &mockGeminiClient{
		response: &gemini.Response{
			Content: gemini.Content{
				Role:  "model",
				Parts: []gemini.Part{{Text: "good morning"}},
			},
			Usage: &gemini.Usage{TotalTokens: 5},
		},
	}
	adapter := NewGeminiAdapter(client)

	req := &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "be helpful"}}},
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: "hi"}}},
			{Role: "assistant", Parts: []Part{{Text: "hello"}}},
			{Role: "user", Parts: []Part{{Text: "how are you"}}},
		},
	}

	resp, err := adapter.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assistant turns are sent to Gemini with the "model" role
	if got := client.lastReq.Messages[1].Role; got != "model" {
		t.Errorf("expected assistant role mapped to model, got %q", got)
	}
	if got := client.lastReq.Messages[0].Role; got != "user" {
		t.Errorf("expected user role unchanged, got %q", got)
	}

	// The "model" role is mapped back on the way out
	if resp.Content.Role != "assistant" {
		t.Errorf("expected response role assistant, got %q", resp.Content.Role)
	}
	if resp.Text() != "good morning" {
		t.Errorf("unexpected response text: %q", resp.Text())
	}
	if resp.ProviderName != "gemini" {
		t.Errorf("unexpected provider name: %q", resp.ProviderName)
	}
}

func TestDeepSeekAdapter_SystemInstruction(t *testing.T) {
	client := &mockDeepSeekClient{
		response: &deepseek.Response{
			Model: "deepseek-chat",
			Choices: []deepseek.Choice{
				{Message: deepseek.Message{Role: "assistant", Content: "good morning"}},
			},
		},
	}
	adapter := NewDeepSeekAdapter(client)

	req := &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "be helpful"}}},
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: "hi"}}},
		},
		Temperature: 0.7,
		MaxTokens:   128,
	}

	resp, err := adapter.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.lastReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(client.lastReq.Messages))
	}
	if client.lastReq.Messages[0].Role != "system" || client.lastReq.Messages[0].Content != "be helpful" {
		t.Errorf("expected system instruction as first message, got %+v", client.lastReq.Messages[0])
	}
	if client.lastReq.Temperature != 0.7 || client.lastReq.MaxTokens != 128 {
		t.Errorf("expected generation settings forwarded, got %+v", client.lastReq)
	}

	if resp.Text() != "good morning" {
		t.Errorf("unexpected response text: %q", resp.Text())
	}
	if resp.Content.Role != "assistant" {
		t.Errorf("unexpected response role: %q", resp.Content.Role)
	}
}

func TestQwenAdapter_SystemInstruction(t *testing.T) {
	client := &mockQwenClient{
		response: &qwen.Response{
			Content: qwen.Content{Role: "assistant", Text: "good morning"},
			Usage:   &qwen.Usage{TotalTokens: 7},
		},
	}
	adapter := NewQwenAdapter(client)

	req := &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "be helpful"}}},
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: "hi"}}},
		},
	}

	resp, err := adapter.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastReq.SystemInstruction == nil || client.lastReq.SystemInstruction.Text != "be helpful" {
		t.Errorf("expected system instruction forwarded, got %+v", client.lastReq.SystemInstruction)
	}
	if len(client.lastReq.Messages) != 1 || client.lastReq.Messages[0].Text != "hi" {
		t.Errorf("expected conversation messages forwarded, got %+v", client.lastReq.Messages)
	}

	if resp.Text() != "good morning" {
		t.Errorf("unexpected response text: %q", resp.Text())
	}
	if resp.ProviderName != "qwen" {
		t.Errorf("unexpected provider name: %q", resp.ProviderName)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 7 {
		t.Errorf("expected usage forwarded, got %+v", resp.Usage)
	}
}

func TestQwenAdapter_EmptyResponse(t *testing.T) {
	client := &mockQwenClient{response: &qwen.Response{}}
	adapter := NewQwenAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Usage must be populated even when the upstream omits it
	if resp.Usage == nil {
		t.Fatal("expected non-nil usage")
	}
	if resp.Text() != "" {
		t.Errorf("expected empty text, got %q", resp.Text())
	}
}
