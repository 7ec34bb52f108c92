package llmcatalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelsOutput_Example(t *testing.T) {
	raw := `{"provider":"openrouter","currentModel":"gpt-4","models":[{"id":"gpt-4","displayName":"GPT-4","contextWindow":128000}]}`

	resp := ParseModelsOutput(raw)
	require.NotNil(t, resp)

	assert.Equal(t, "openrouter", resp.Provider)
	assert.Equal(t, "gpt-4", resp.CurrentModel)
	require.Len(t, resp.Models, 1)

	m := resp.Models[0]
	assert.Equal(t, "gpt-4", m.ID)
	require.NotNil(t, m.DisplayName)
	assert.Equal(t, "GPT-4", *m.DisplayName)
	assert.Equal(t, 128000, m.ContextWindow)
	assert.Nil(t, m.SupportsImages)
	assert.Nil(t, m.InputPrice)
	assert.Nil(t, m.OutputPrice)

	// Re-encoding must not invent the optional keys.
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
	assert.NotContains(t, string(out), "supportsImages")
	assert.NotContains(t, string(out), "inputPrice")
	assert.NotContains(t, string(out), "outputPrice")
}

func TestParseModelsOutput_AllFields(t *testing.T) {
	raw := `{
		"provider": "anthropic",
		"currentModel": "claude-sonnet",
		"models": [
			{"id": "claude-sonnet", "displayName": "Sonnet", "contextWindow": 200000,
			 "supportsImages": true, "inputPrice": 3, "outputPrice": 15},
			{"id": "claude-haiku", "contextWindow": 200000, "supportsImages": false, "inputPrice": 0.8},
			{"id": "local", "contextWindow": 0}
		]
	}`

	resp := ParseModelsOutput(raw)
	require.NotNil(t, resp)
	require.Len(t, resp.Models, 3)

	ids := []string{resp.Models[0].ID, resp.Models[1].ID, resp.Models[2].ID}
	assert.Equal(t, []string{"claude-sonnet", "claude-haiku", "local"}, ids, "order preserved")

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	haiku := resp.Models[1]
	require.NotNil(t, haiku.SupportsImages)
	assert.False(t, *haiku.SupportsImages)
	assert.Nil(t, haiku.OutputPrice)
	assert.Nil(t, haiku.DisplayName)
}

func TestParseModelsOutput_EmptyModelList(t *testing.T) {
	resp := ParseModelsOutput(`{"provider":"p","currentModel":"","models":[]}`)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Models)
}

func TestParseModelsOutput_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", " \n\t  "},
		{"not json", "Error: provider not configured"},
		{"truncated json", `{"provider":"p","currentModel":"m","models":[`},
		{"trailing garbage", `{"provider":"p","currentModel":"m","models":[]} extra`},
		{"json array", `[{"id":"a","contextWindow":1}]`},
		{"json string", `"models"`},
		{"json null", `null`},
		{"error shape", `{"error":"No provider configured","code":"NO_PROVIDER"}`},
		{"error shape with catalog fields", `{"error":"x","code":"y","provider":"p","currentModel":"m","models":[]}`},
		{"missing provider", `{"currentModel":"m","models":[]}`},
		{"numeric provider", `{"provider":1,"currentModel":"m","models":[]}`},
		{"null currentModel", `{"provider":"p","currentModel":null,"models":[]}`},
		{"missing models", `{"provider":"p","currentModel":"m"}`},
		{"models object", `{"provider":"p","currentModel":"m","models":{}}`},
		{"models null", `{"provider":"p","currentModel":"m","models":null}`},
		{"model not object", `{"provider":"p","currentModel":"m","models":["gpt-4"]}`},
		{"model missing id", `{"provider":"p","currentModel":"m","models":[{"contextWindow":1}]}`},
		{"model numeric id", `{"provider":"p","currentModel":"m","models":[{"id":4,"contextWindow":1}]}`},
		{"model missing contextWindow", `{"provider":"p","currentModel":"m","models":[{"id":"a"}]}`},
		{"model string contextWindow", `{"provider":"p","currentModel":"m","models":[{"id":"a","contextWindow":"128000"}]}`},
		{"model fractional contextWindow", `{"provider":"p","currentModel":"m","models":[{"id":"a","contextWindow":1.5}]}`},
		{"bad displayName type", `{"provider":"p","currentModel":"m","models":[{"id":"a","contextWindow":1,"displayName":7}]}`},
		{"bad supportsImages type", `{"provider":"p","currentModel":"m","models":[{"id":"a","contextWindow":1,"supportsImages":"yes"}]}`},
		{"bad price type", `{"provider":"p","currentModel":"m","models":[{"id":"a","contextWindow":1,"inputPrice":"cheap"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseModelsOutput(tt.raw))
		})
	}
}

func TestParseModelsOutput_NoPartialList(t *testing.T) {
	raw := `{"provider":"p","currentModel":"a","models":[
		{"id":"a","contextWindow":1000},
		{"id":"b","contextWindow":2000},
		{"id":"c"}
	]}`
	assert.Nil(t, ParseModelsOutput(raw), "one invalid entry rejects the whole catalog")
}

func TestParseModelsOutput_NullOptionalsOmitted(t *testing.T) {
	raw := `{"provider":"p","currentModel":"a","models":[{"id":"a","contextWindow":8192,"displayName":null,"inputPrice":null}]}`

	resp := ParseModelsOutput(raw)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Models[0].DisplayName)
	assert.Nil(t, resp.Models[0].InputPrice)
}

func TestParseModelsOutput_ExponentContextWindow(t *testing.T) {
	resp := ParseModelsOutput(`{"provider":"p","currentModel":"a","models":[{"id":"a","contextWindow":1e6}]}`)
	require.NotNil(t, resp)
	assert.Equal(t, 1000000, resp.Models[0].ContextWindow)
}

func TestParseModelsError(t *testing.T) {
	apiErr, ok := ParseModelsError(`{"error":"No provider configured","code":"NO_PROVIDER"}`)
	require.True(t, ok)
	assert.Equal(t, "No provider configured", apiErr.Error)
	assert.Equal(t, "NO_PROVIDER", apiErr.Code)

	apiErr, ok = ParseModelsError(`{"error":{"msg":"x"},"code":42}`)
	require.True(t, ok)
	assert.Equal(t, `{"msg":"x"}`, apiErr.Error)
	assert.Equal(t, "42", apiErr.Code)

	_, ok = ParseModelsError(`{"error":"only error"}`)
	assert.False(t, ok)

	_, ok = ParseModelsError(`not json`)
	assert.False(t, ok)
}

func BenchmarkParseModelsOutput(b *testing.B) {
	raw := `{"provider":"openrouter","currentModel":"gpt-4","models":[` +
		`{"id":"openai/gpt-4","displayName":"GPT-4","contextWindow":128000,"inputPrice":30,"outputPrice":60},` +
		`{"id":"anthropic/claude-sonnet","displayName":"Sonnet","contextWindow":200000,"supportsImages":true}]}`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseModelsOutput(raw)
	}
}
