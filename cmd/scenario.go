package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/etnz/proforma"
	"github.com/etnz/proforma/renderer"
)

// decodeScenarioFile reads a scenario file.
func decodeScenarioFile(name string) (proforma.Scenario, error) {
	f, err := os.Open(name)
	if err != nil {
		return proforma.Scenario{}, err
	}
	defer f.Close()

	s, err := proforma.DecodeScenario(f, defaultCurrency())
	if err != nil {
		return proforma.Scenario{}, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// extractFlowsFile reads the cash flows at path in an arbitrary JSON file.
func extractFlowsFile(name, path string) (proforma.CashFlows, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	flows, err := proforma.ExtractFlows(doc, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return flows, nil
}

// printReturns prints the scenario returns, as a report or as JSON.
func printReturns(s proforma.Scenario, r proforma.Returns, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Scenario proforma.Scenario `json:"scenario"`
			Returns  proforma.Returns  `json:"returns"`
		}{s, r})
	}
	printMarkdown(renderer.RenderReport(renderer.NewReport(s, r)))
	return nil
}
