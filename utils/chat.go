package utils

import (
	"fmt"
	"log"

	"talim/config"

	"github.com/go-resty/resty/v2"
)

// ChatMessage represents a message in the tutor conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat completions API
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse represents a response from the chat completions API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatCompletion sends the conversation to the configured OpenAI-compatible
// endpoint and returns the first choice's content.
func ChatCompletion(messages []ChatMessage) (string, error) {
	if config.AppConfig.ChatApiKey == "" {
		return "", fmt.Errorf("chat API key is not configured")
	}

	request := ChatRequest{
		Model:    config.AppConfig.ChatModel,
		Messages: messages,
	}

	var response ChatResponse
	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.ChatApiKey).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post(config.AppConfig.ChatApiURL)
	if err != nil {
		log.Printf("Chat completion request failed: %v", err)
		return "", err
	}

	if response.Error != nil {
		return "", fmt.Errorf("chat API error: %s", response.Error.Message)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("chat API returned status %d", resp.StatusCode())
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return response.Choices[0].Message.Content, nil
}
