package proforma

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Scenario is an investment to evaluate: the investor equity, the project
// cash flows, and what is needed to present them.
type Scenario struct {
	Name        string
	Description string
	Currency    string          // display only
	Equity      decimal.Decimal // investor equity, a positive magnitude
	Duration    int             // project duration in years, caller supplied
	Flows       CashFlows       // one flow per year, period 0 first
}

// DevelopmentExample returns a development project sold for $2M.
//
// The project costs $1.6M (80% of the sale), the required equity is 30% of
// that cost, and the investor contributes $400,000 of it. Nothing is
// distributed during the construction year, and the sale in year 2 returns
// the capital plus a $250,000 profit.
func DevelopmentExample() Scenario {
	return Scenario{
		Name:        "Development project, $2M sale",
		Description: "Year 0 equity investment, year 1 construction, year 2 net sale proceeds after debt payoff and fees.",
		Currency:    "USD",
		Equity:      D(400000),
		Duration:    2,
		Flows:       Flows(-400000, 0, 650000),
	}
}

// Validate checks that the scenario can be computed.
func (s Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: scenario name is required", ErrInvalidInput)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: scenario %q: duration must not be negative, got %d", ErrInvalidInput, s.Name, s.Duration)
	}
	if err := validateInputs(s.Equity, s.Flows); err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return nil
}

// Compute validates the scenario and computes its returns with solver.
func (s Scenario) Compute(solver Solver) (Returns, error) {
	if err := s.Validate(); err != nil {
		return Returns{}, err
	}
	return solver.Compute(s.Equity, s.Flows)
}

// scenarioJSON is the file format of a scenario.
type scenarioJSON struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	Equity      *decimal.Decimal `json:"equity,omitempty"`
	Duration    int              `json:"duration"`
	Flows       CashFlows        `json:"flows"`
}

// DecodeScenario reads a JSON scenario from r.
//
// When equity is omitted, it defaults to the magnitude of the first flow. A
// missing currency defaults to defaultCurrency.
func DecodeScenario(r io.Reader, defaultCurrency string) (Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var js scenarioJSON
	if err := dec.Decode(&js); err != nil {
		return Scenario{}, fmt.Errorf("%w: decoding scenario: %w", ErrInvalidInput, err)
	}
	s := Scenario{
		Name:        js.Name,
		Description: js.Description,
		Currency:    js.Currency,
		Duration:    js.Duration,
		Flows:       js.Flows,
	}
	if s.Currency == "" {
		s.Currency = defaultCurrency
	}
	if js.Equity != nil {
		s.Equity = *js.Equity
	} else {
		s.Equity = s.Flows.Initial().Abs()
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// MarshalJSON encodes the scenario in the format read by DecodeScenario.
func (s Scenario) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.Name)
	w.Optional("description", s.Description)
	w.Optional("currency", s.Currency)
	w.Append("equity", s.Equity)
	w.Append("duration", s.Duration)
	w.Append("flows", s.Flows)
	return w.MarshalJSON()
}

// ExtractFlows reads a cash flow series out of an arbitrary JSON document,
// as decoded by encoding/json, using a jsonpath expression such as
// "$.model.equity.flows".
func ExtractFlows(doc any, path string) (CashFlows, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrInvalidInput, path, err)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %T, not an array", ErrInvalidInput, path, v)
	}
	// wildcard expressions wrap a single matched array into another list.
	if len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			list = inner
		}
	}

	flows := make(CashFlows, 0, len(list))
	for i, item := range list {
		switch x := item.(type) {
		case float64:
			flows = append(flows, decimal.NewFromFloat(x))
		case json.Number:
			d, err := decimal.NewFromString(x.String())
			if err != nil {
				return nil, fmt.Errorf("%w: %q[%d]: %w", ErrInvalidInput, path, i, err)
			}
			flows = append(flows, d)
		case string:
			d, err := decimal.NewFromString(x)
			if err != nil {
				return nil, fmt.Errorf("%w: %q[%d]: %w", ErrInvalidInput, path, i, err)
			}
			flows = append(flows, d)
		default:
			return nil, fmt.Errorf("%w: %q[%d] is a %T, not a number", ErrInvalidInput, path, i, item)
		}
	}
	return flows, nil
}
