package llmcatalog

// AvailableModel is one model offered by the provider behind the CLI tool.
// Optional fields are nil when the tool did not report them.
type AvailableModel struct {
	ID             string   `json:"id" yaml:"id"`
	DisplayName    *string  `json:"displayName,omitempty" yaml:"display_name,omitempty"`
	ContextWindow  int      `json:"contextWindow" yaml:"context_window"`
	SupportsImages *bool    `json:"supportsImages,omitempty" yaml:"supports_images,omitempty"`
	InputPrice     *float64 `json:"inputPrice,omitempty" yaml:"input_price,omitempty"`
	OutputPrice    *float64 `json:"outputPrice,omitempty" yaml:"output_price,omitempty"`
}

// ModelsResponse is the catalog printed by `<tool> models --json`.
type ModelsResponse struct {
	Provider     string           `json:"provider" yaml:"provider"`
	CurrentModel string           `json:"currentModel" yaml:"current_model"`
	Models       []AvailableModel `json:"models" yaml:"models"`
}

// ModelsError is the payload the tool prints instead of a catalog when it
// cannot list models (for example, no provider configured).
type ModelsError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Name returns the display name, or the ID when none was reported.
func (m AvailableModel) Name() string {
	if m.DisplayName != nil && *m.DisplayName != "" {
		return *m.DisplayName
	}
	return m.ID
}

// Features derives the capability set from the reported fields.
func (m AvailableModel) Features() Capability {
	c := ModalityTextIn | ModalityTextOut
	if m.SupportsImages != nil && *m.SupportsImages {
		c |= ModalityImageIn
	}
	if m.InputPrice != nil || m.OutputPrice != nil {
		c |= CapPricing
	}
	return c
}

func (m AvailableModel) HasCapability(c Capability) bool { return m.Features()&c == c }

// PriceInput returns the input price, 0 when unknown.
func (m AvailableModel) PriceInput() float64 {
	if m.InputPrice == nil {
		return 0
	}
	return *m.InputPrice
}

// PriceOutput returns the output price, 0 when unknown.
func (m AvailableModel) PriceOutput() float64 {
	if m.OutputPrice == nil {
		return 0
	}
	return *m.OutputPrice
}
