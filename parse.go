package llmcatalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
)

// maxSafeInteger bounds contextWindow to values a JSON producer can emit exactly.
const maxSafeInteger = 1<<53 - 1

// ParseModelsOutput decodes the stdout of `<tool> models --json`.
//
// It returns nil for blank input, malformed JSON, the {error, code} failure
// shape, or a catalog that does not validate. Validation is all-or-nothing:
// one bad model entry rejects the whole response.
func ParseModelsOutput(raw string) *ModelsResponse {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return nil
	}
	if isErrorShape(fields) {
		return nil
	}

	provider, ok := stringField(fields, "provider")
	if !ok {
		return nil
	}
	current, ok := stringField(fields, "currentModel")
	if !ok {
		return nil
	}
	rawModels, ok := fields["models"]
	if !ok || isNull(rawModels) {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(rawModels, &entries); err != nil {
		return nil
	}

	models := make([]AvailableModel, 0, len(entries))
	for _, entry := range entries {
		m, ok := validateModel(entry)
		if !ok {
			return nil
		}
		models = append(models, m)
	}

	return &ModelsResponse{
		Provider:     provider,
		CurrentModel: current,
		Models:       models,
	}
}

// ParseModelsError reports whether raw is the tool's {error, code} payload.
func ParseModelsError(raw string) (*ModelsError, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || !isErrorShape(fields) {
		return nil, false
	}
	out := &ModelsError{}
	// Non-string values still mark the failure shape; keep their JSON text.
	if s, ok := stringField(fields, "error"); ok {
		out.Error = s
	} else {
		out.Error = string(fields["error"])
	}
	if s, ok := stringField(fields, "code"); ok {
		out.Code = s
	} else {
		out.Code = string(fields["code"])
	}
	return out, true
}

func isErrorShape(fields map[string]json.RawMessage) bool {
	_, hasErr := fields["error"]
	_, hasCode := fields["code"]
	return hasErr && hasCode
}

func validateModel(entry json.RawMessage) (AvailableModel, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return AvailableModel{}, false
	}

	id, ok := stringField(fields, "id")
	if !ok {
		return AvailableModel{}, false
	}
	window, ok := numberField(fields, "contextWindow")
	if !ok || window != math.Trunc(window) || math.Abs(window) > maxSafeInteger {
		return AvailableModel{}, false
	}

	m := AvailableModel{ID: id, ContextWindow: int(window)}

	if raw, present := optional(fields, "displayName"); present {
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return AvailableModel{}, false
		}
		m.DisplayName = &v
	}
	if raw, present := optional(fields, "supportsImages"); present {
		var v bool
		if json.Unmarshal(raw, &v) != nil {
			return AvailableModel{}, false
		}
		m.SupportsImages = &v
	}
	if raw, present := optional(fields, "inputPrice"); present {
		var v float64
		if json.Unmarshal(raw, &v) != nil {
			return AvailableModel{}, false
		}
		m.InputPrice = &v
	}
	if raw, present := optional(fields, "outputPrice"); present {
		var v float64
		if json.Unmarshal(raw, &v) != nil {
			return AvailableModel{}, false
		}
		m.OutputPrice = &v
	}

	return m, true
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func numberField(fields map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// optional treats an explicit null the same as a missing key.
func optional(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
