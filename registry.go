package llmcatalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog indexes a fetched ModelsResponse for lookups and filtering.
type Catalog struct {
	resp       *ModelsResponse
	byID       map[string]int
	aliasIndex map[string]string
}

// NewCatalog builds the ID and alias indexes. Aliases are the last path
// segment of an ID ("openai/gpt-4o" -> "gpt-4o") when that segment is
// unique within the catalog. A nil resp yields an empty catalog.
func NewCatalog(resp *ModelsResponse) *Catalog {
	if resp == nil {
		resp = &ModelsResponse{}
	}
	c := &Catalog{
		resp:       resp,
		byID:       make(map[string]int, len(resp.Models)),
		aliasIndex: make(map[string]string),
	}

	suffixCounts := make(map[string]int)
	for i, m := range resp.Models {
		// First entry wins on duplicate IDs.
		if _, dup := c.byID[m.ID]; !dup {
			c.byID[m.ID] = i
		}
		if suffix, ok := idSuffix(m.ID); ok {
			suffixCounts[strings.ToLower(suffix)]++
		}
	}
	for _, m := range resp.Models {
		suffix, ok := idSuffix(m.ID)
		if !ok {
			continue
		}
		lower := strings.ToLower(suffix)
		if suffixCounts[lower] != 1 {
			continue
		}
		if _, clash := c.byID[suffix]; clash {
			continue
		}
		c.aliasIndex[lower] = m.ID
	}
	return c
}

func idSuffix(id string) (string, bool) {
	i := strings.LastIndex(id, "/")
	if i < 0 || i == len(id)-1 {
		return "", false
	}
	return id[i+1:], true
}

// Provider returns the provider name as reported by the tool.
func (c *Catalog) Provider() string { return c.resp.Provider }

// ProviderName returns a display form of the provider name.
func (c *Catalog) ProviderName() string { return NormalizeProvider(c.resp.Provider) }

// Len returns the number of models.
func (c *Catalog) Len() int { return len(c.resp.Models) }

// Get retrieves a model by its ID or alias.
func (c *Catalog) Get(name string) (AvailableModel, bool) {
	// 1. Try exact ID
	if i, ok := c.byID[name]; ok {
		return c.resp.Models[i], true
	}

	// 2. Try alias (normalized to lowercase for case-insensitive lookup)
	if id, ok := c.aliasIndex[strings.ToLower(name)]; ok {
		if i, ok := c.byID[id]; ok {
			return c.resp.Models[i], true
		}
	}

	return AvailableModel{}, false
}

// Current returns the model the tool reports as selected.
func (c *Catalog) Current() (AvailableModel, bool) {
	if c.resp.CurrentModel == "" {
		return AvailableModel{}, false
	}
	return c.Get(c.resp.CurrentModel)
}

// QueryBuilder provides a chainable API for filtering models.
type QueryBuilder struct {
	catalog    *Catalog
	capability Capability
	minContext int
	maxInPrice float64
	hasMaxIn   bool
}

// Query starts a new query builder.
func (c *Catalog) Query() *QueryBuilder {
	return &QueryBuilder{catalog: c}
}

// Has filters models by capability.
func (q *QueryBuilder) Has(cap Capability) *QueryBuilder {
	q.capability |= cap
	return q
}

// MinContext keeps models whose context window is at least n tokens.
func (q *QueryBuilder) MinContext(n int) *QueryBuilder {
	q.minContext = n
	return q
}

// MaxInputPrice keeps models with a known input price not above p.
func (q *QueryBuilder) MaxInputPrice(p float64) *QueryBuilder {
	q.maxInPrice = p
	q.hasMaxIn = true
	return q
}

// List returns the matching models in catalog order.
func (q *QueryBuilder) List() []AvailableModel {
	var results []AvailableModel
	for _, m := range q.catalog.resp.Models {
		// Filter by capabilities
		if q.capability != 0 && !m.HasCapability(q.capability) {
			continue
		}
		if m.ContextWindow < q.minContext {
			continue
		}
		if q.hasMaxIn && (m.InputPrice == nil || *m.InputPrice > q.maxInPrice) {
			continue
		}
		results = append(results, m)
	}
	return results
}

// NormalizeProvider maps provider identifiers to their display names.
func NormalizeProvider(id string) string {
	lower := strings.ToLower(strings.TrimSpace(id))
	switch lower {
	case "":
		return ""
	case "openai":
		return "OpenAI"
	case "openrouter":
		return "OpenRouter"
	case "anthropic":
		return "Anthropic"
	case "google", "gemini":
		return "Google"
	case "mistralai", "mistral":
		return "Mistral"
	case "meta-llama", "llama":
		return "Meta"
	case "deepseek":
		return "DeepSeek"
	case "xai", "x-ai":
		return "xAI"
	case "ollama":
		return "Ollama"
	case "lmstudio", "lm-studio":
		return "LM Studio"
	case "alibaba", "qwen":
		return "Qwen"
	default:
		caser := cases.Title(language.English)
		return caser.String(lower)
	}
}
