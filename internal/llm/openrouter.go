package llm

// defaultOpenRouterBaseURL is the OpenRouter API endpoint, which speaks
// the OpenAI chat completions protocol.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider creates a provider backed by OpenRouter.
// OpenRouter exposes an OpenAI-compatible API, so this reuses the
// OpenAI provider with a different base URL.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
}
