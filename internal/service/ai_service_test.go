package service

import (
	"ecowave_backend/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAIServer(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewAIService(config.AIConfig{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		Model:    "test-model",
		TTSModel: "test-tts-model",
	})
}

func textReply(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]interface{}{{"text": text}},
			}},
		},
	}
}

func TestChat(t *testing.T) {
	t.Run("returns model text", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			json.NewEncoder(w).Encode(textReply("Plastic takes centuries to degrade 🌊"))
		})

		reply := svc.Chat("What happens to plastic in the ocean?", "")
		assert.Equal(t, "Plastic takes centuries to degrade 🌊", reply)
	})

	t.Run("falls back on upstream error", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		reply := svc.Chat("hello", "")
		assert.Equal(t, "The ocean is vast, and sometimes my signals get crossed. Please check your connection and try again.", reply)
	})

	t.Run("falls back on empty candidates", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
		})

		reply := svc.Chat("hello", "")
		assert.Equal(t, "I'm sorry, the ocean depth is causing some signal loss. Please try asking again!", reply)
	})

	t.Run("attaches inline image stripped of data prefix", func(t *testing.T) {
		var got generateContentRequest
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(textReply("Looks like plastic waste"))
		})

		svc.Chat("What is this?", "data:image/jpeg;base64,aGVsbG8=")

		require.Len(t, got.Contents, 1)
		require.Len(t, got.Contents[0].Parts, 2)
		require.NotNil(t, got.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "aGVsbG8=", got.Contents[0].Parts[1].InlineData.Data)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("parses structured result", func(t *testing.T) {
		payload := `{"vitalityIndex":62,"recoveryTime":"8-12 years","primaryImpact":"Coral bleaching",` +
			`"speciesForecast":[{"species":"Sea Turtle","status":"Declining"}],"recommendation":"Reduce runoff"}`
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(textReply(payload))
		})

		result, err := svc.Simulate("double the fishing fleet")
		require.NoError(t, err)
		assert.Equal(t, 62, result.VitalityIndex)
		assert.Equal(t, "8-12 years", result.RecoveryTime)
		require.Len(t, result.SpeciesForecast, 1)
		assert.Equal(t, "Sea Turtle", result.SpeciesForecast[0].Species)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(textReply("not json"))
		})

		_, err := svc.Simulate("scenario")
		assert.Error(t, err)
	})

	t.Run("rejects out-of-range vitality", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(textReply(`{"vitalityIndex":140,"recoveryTime":"","primaryImpact":"","speciesForecast":[],"recommendation":""}`))
		})

		_, err := svc.Simulate("scenario")
		assert.Error(t, err)
	})

	t.Run("propagates upstream failure", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := svc.Simulate("scenario")
		assert.Error(t, err)
	})
}

func TestSynthesizeSpeech(t *testing.T) {
	t.Run("returns inline audio data", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/test-tts-model:generateContent", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"inlineData": map[string]interface{}{"mimeType": "audio/pcm", "data": "cGNtZGF0YQ=="}},
						},
					}},
				},
			})
		})

		audio, err := svc.SynthesizeSpeech("Welcome to the deep")
		require.NoError(t, err)
		assert.Equal(t, "cGNtZGF0YQ==", audio)
	})

	t.Run("errors when no audio part", func(t *testing.T) {
		svc := stubAIServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(textReply("no audio here"))
		})

		_, err := svc.SynthesizeSpeech("script")
		assert.Error(t, err)
	})
}
