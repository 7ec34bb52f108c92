package llmcatalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoCatalog is returned by Resolve when neither the tool nor the fallback
// file produced a catalog.
var ErrNoCatalog = errors.New("no model catalog available")

// Source says where a resolved catalog came from.
type Source string

const (
	SourceCLI      Source = "cli"
	SourceFallback Source = "fallback"
)

// LoadFallback reads a static catalog from a YAML file:
//
//	provider: openrouter
//	current_model: openai/gpt-4o
//	models:
//	  - id: openai/gpt-4o
//	    display_name: GPT-4o
//	    context_window: 128000
//	    supports_images: true
func LoadFallback(path string) (*ModelsResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fallback catalog: %w", err)
	}
	defer f.Close()

	var resp ModelsResponse
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode fallback catalog %s: %w", path, err)
	}
	for i, m := range resp.Models {
		if m.ID == "" {
			return nil, fmt.Errorf("fallback catalog %s: model %d has no id", path, i)
		}
		if m.ContextWindow <= 0 {
			return nil, fmt.Errorf("fallback catalog %s: model %q has no context_window", path, m.ID)
		}
	}
	if resp.Models == nil {
		resp.Models = []AvailableModel{}
	}
	return &resp, nil
}

// Options configures Resolve.
type Options struct {
	// ExecutablePath is the tool to run. Empty skips the fetch.
	ExecutablePath string

	// FallbackPath is a YAML catalog used when the fetch yields nothing.
	FallbackPath string

	Timeout time.Duration
	Logger  Logger

	// Fetcher overrides the environment-configured fetcher.
	Fetcher *Fetcher
}

// Resolve fetches the catalog from the tool and falls back to the static
// file. Fallback load errors are logged and reported as ErrNoCatalog.
func Resolve(ctx context.Context, opts Options) (*ModelsResponse, Source, error) {
	if opts.ExecutablePath != "" {
		f := opts.Fetcher
		if f == nil {
			f = NewFetcher()
		}
		if resp := f.Fetch(ctx, opts.ExecutablePath, opts.Logger, opts.Timeout); resp != nil {
			return resp, SourceCLI, nil
		}
	}

	if opts.FallbackPath == "" {
		return nil, "", ErrNoCatalog
	}
	resp, err := LoadFallback(opts.FallbackPath)
	if err != nil {
		opts.Logger.log(fmt.Sprintf("Failed to load fallback catalog: %v", err))
		return nil, "", fmt.Errorf("%w: %v", ErrNoCatalog, err)
	}
	return resp, SourceFallback, nil
}
