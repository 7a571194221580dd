package service

import (
	"bytes"
	"ecowave_backend/internal/config"
	"ecowave_backend/internal/util"
	"ecowave_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// 海洋保护助手的系统提示词，与移动端既有人设保持一致
const assistantSystemInstruction = `You are EcoWave's Marine Conservation AI Assistant.
Your goal is to help users identify marine pollution, provide tips for ocean conservation,
and explain the risks to marine life.

Be helpful, scientific yet accessible, and encouraging.
When asked to identify pollution from an image description or text:
1. Identify the likely pollutant (Plastic, Oil, Chemical, etc.)
2. Explain the environmental impact.
3. Suggest the best way to handle it safely.
4. Encourage reporting it via the EcoWave app to earn points.

Keep responses concise (max 3 paragraphs) for mobile readability.
Use emojis where appropriate to keep it engaging.`

// 上游异常时返回给用户的兜底文案
const (
	chatEmptyFallback = "I'm sorry, the ocean depth is causing some signal loss. Please try asking again!"
	chatErrorFallback = "The ocean is vast, and sometimes my signals get crossed. Please check your connection and try again."
)

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{config: cfg, client: &http.Client{}}
}

type aiPart struct {
	Text       string        `json:"text,omitempty"`
	InlineData *aiInlineData `json:"inlineData,omitempty"`
}

type aiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents          []aiContent            `json:"contents"`
	SystemInstruction *aiContent             `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]interface{} `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content aiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat 自由问答，支持附带一张base64图片。
// 上游失败只降级为兜底文案，不向调用方抛错——AI结果从不影响积分状态。
func (s *AIService) Chat(message, inlineImageBase64 string) string {
	parts := []aiPart{{Text: message}}
	if inlineImageBase64 != "" {
		data := inlineImageBase64
		if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
			data = data[idx+1:]
		}
		parts = append(parts, aiPart{InlineData: &aiInlineData{MimeType: "image/jpeg", Data: data}})
	}

	req := generateContentRequest{
		Contents:          []aiContent{{Parts: parts}},
		SystemInstruction: &aiContent{Parts: []aiPart{{Text: assistantSystemInstruction}}},
		GenerationConfig:  map[string]interface{}{"temperature": 0.7},
	}

	resp, err := s.generate(s.config.Model, req)
	if err != nil {
		logger.Log.Warn("AI chat upstream failed", zap.Error(err))
		return chatErrorFallback
	}

	text := firstText(resp)
	if text == "" {
		return chatEmptyFallback
	}
	return text
}

// SimulationResult 生态模拟的固定返回结构
type SimulationResult struct {
	VitalityIndex   int               `json:"vitalityIndex"`
	RecoveryTime    string            `json:"recoveryTime"`
	PrimaryImpact   string            `json:"primaryImpact"`
	SpeciesForecast []SpeciesForecast `json:"speciesForecast"`
	Recommendation  string            `json:"recommendation"`
}

type SpeciesForecast struct {
	Species string `json:"species"`
	Status  string `json:"status"`
}

// Simulate 让模型按固定JSON schema预测场景的生态影响。
// 与Chat不同，失败在这里是硬错误，调用方直接中止且不改任何状态。
func (s *AIService) Simulate(scenario string) (*SimulationResult, error) {
	prompt := fmt.Sprintf("Simulate the decade-long ecological impact of the following hypothetical scenario on the ocean: %s", scenario)

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"vitalityIndex": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 100},
			"recoveryTime":  map[string]interface{}{"type": "string"},
			"primaryImpact": map[string]interface{}{"type": "string"},
			"speciesForecast": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"species": map[string]interface{}{"type": "string"},
						"status":  map[string]interface{}{"type": "string"},
					},
					"required": []string{"species", "status"},
				},
			},
			"recommendation": map[string]interface{}{"type": "string"},
		},
		"required": []string{"vitalityIndex", "recoveryTime", "primaryImpact", "speciesForecast", "recommendation"},
	}

	req := generateContentRequest{
		Contents: []aiContent{{Parts: []aiPart{{Text: prompt}}}},
		GenerationConfig: map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   schema,
		},
	}

	resp, err := s.generate(s.config.Model, req)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, util.ErrUpstreamAI
	}

	var result SimulationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, util.ErrUpstreamAI
	}
	if result.VitalityIndex < 0 || result.VitalityIndex > 100 {
		return nil, util.ErrUpstreamAI
	}

	return &result, nil
}

// SynthesizeSpeech 文本转语音，返回base64编码的24kHz单声道16位PCM
func (s *AIService) SynthesizeSpeech(script string) (string, error) {
	req := generateContentRequest{
		Contents: []aiContent{{Parts: []aiPart{{Text: script}}}},
		GenerationConfig: map[string]interface{}{
			"responseModalities": []string{"AUDIO"},
		},
	}

	resp, err := s.generate(s.config.TTSModel, req)
	if err != nil {
		return "", err
	}

	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}

	return "", util.ErrUpstreamAI
}

func (s *AIService) generate(model string, reqBody generateContentRequest) (*generateContentResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.config.BaseURL, model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	return &result, nil
}

func firstText(resp *generateContentResponse) string {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
