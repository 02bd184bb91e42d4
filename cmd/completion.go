package cmd

import (
	"github.com/etnz/proforma/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	scenarios := predict.Files("*.json")

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"example": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
			},
			"compute": {
				Flags: map[string]complete.Predictor{
					"equity":   predict.Something,
					"years":    predict.Something,
					"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
					"name":     predict.Something,
					"f":        scenarios,
					"path":     predict.Something,
					"json":     predict.Nothing,
				},
			},
			"batch": {
				Flags: map[string]complete.Predictor{"j": predict.Something},
				Args:  scenarios,
			},
			"topic": {
				Args: predict.Set(append([]string{"readme"}, topics...)),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"v":      predict.Nothing,
			"raw":    predict.Nothing,
			"config": predict.Files("*.yaml"),
		},
	}
}
