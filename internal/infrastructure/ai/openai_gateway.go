package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/pkg/config"
)

var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY")

const systemPrompt = `Você é um consultor de precificação para pequenos negócios artesanais.
Dado o ramo de atividade e a descrição de um item, responda APENAS com um objeto JSON com os campos:
nomeSugerido (string), tipo ("produto" ou "servico"), precoSugerido (number), custoEstimado (number), categoriaSugerida (string), justificativa (string).`

// OpenAIGateway implements interfaces.IGuiaGateway against the OpenAI
// chat-completions API. Responses are parsed strictly: anything that is not
// the expected JSON object is an error, the caller never sees raw model text.
type OpenAIGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	log        zerolog.Logger
}

func NewOpenAIGateway(cfg config.OpenAIConfig, log zerolog.Logger) (*OpenAIGateway, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenAIGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		log:        log,
	}, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *chatFormat   `json:"response_format,omitempty"`
	Temperature    float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (g *OpenAIGateway) Sugerir(ctx context.Context, in entities.GuiaInput) (entities.GuiaSugestao, error) {
	userPrompt, err := json.Marshal(in)
	if err != nil {
		return entities.GuiaSugestao{}, err
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(userPrompt)},
		},
		ResponseFormat: &chatFormat{Type: "json_object"},
		Temperature:    0.2,
	})
	if err != nil {
		return entities.GuiaSugestao{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return entities.GuiaSugestao{}, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entities.GuiaSugestao{}, fmt.Errorf("calling openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.GuiaSugestao{}, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return entities.GuiaSugestao{}, fmt.Errorf("decoding openai response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		g.log.Warn().Int("status", resp.StatusCode).Str("error", msg).Msg("openai request failed")
		return entities.GuiaSugestao{}, fmt.Errorf("openai returned status %d: %s", resp.StatusCode, msg)
	}
	if len(parsed.Choices) == 0 {
		return entities.GuiaSugestao{}, errors.New("openai response has no choices")
	}

	var out entities.GuiaSugestao
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &out); err != nil {
		return entities.GuiaSugestao{}, fmt.Errorf("decoding guide suggestion: %w", err)
	}
	return out, nil
}
