package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	currentColor = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

func printCatalog(w io.Writer, resp *llmcatalog.ModelsResponse, asJSON bool) error {
	if asJSON {
		return writeJSON(w, resp)
	}

	catalog := llmcatalog.NewCatalog(resp)
	headerColor.Fprintf(w, "%s (%d models)\n", catalog.ProviderName(), catalog.Len())
	for _, m := range resp.Models {
		marker := "  "
		line := fmt.Sprintf("%-40s %-30s %9s  %s", m.ID, m.Name(), formatTokens(m.ContextWindow), formatPrices(m))
		if m.ID == resp.CurrentModel {
			marker = "* "
			currentColor.Fprintln(w, marker+line)
			continue
		}
		fmt.Fprintln(w, marker+line)
	}
	return nil
}

func printModel(w io.Writer, m llmcatalog.AvailableModel, asJSON bool) error {
	if asJSON {
		return writeJSON(w, m)
	}
	headerColor.Fprintln(w, m.Name())
	fmt.Fprintf(w, "ID:             %s\n", m.ID)
	fmt.Fprintf(w, "Context window: %s tokens\n", formatTokens(m.ContextWindow))
	fmt.Fprintf(w, "Capabilities:   %s\n", m.Features())
	fmt.Fprintf(w, "Prices:         %s\n", formatPrices(m))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTokens(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return strconv.Itoa(n/1_000_000) + "M"
	case n >= 1000 && n%1000 == 0:
		return strconv.Itoa(n/1000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func formatPrices(m llmcatalog.AvailableModel) string {
	if m.InputPrice == nil && m.OutputPrice == nil {
		return dimColor.Sprint("price n/a")
	}
	return fmt.Sprintf("in $%g / out $%g", m.PriceInput(), m.PriceOutput())
}
