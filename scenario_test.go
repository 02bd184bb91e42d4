package proforma

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDevelopmentExample(t *testing.T) {
	s := DevelopmentExample()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	r, err := s.Compute(DefaultSolver)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got, want := r.EquityMultiple.String(), "1.62x"; got != want {
		t.Errorf("EquityMultiple = %s, want %s", got, want)
	}
	if got, want := r.IRR.String(), "27.48%"; got != want {
		t.Errorf("IRR = %s, want %s", got, want)
	}
	if !r.Profit.Equal(D(250000)) {
		t.Errorf("Profit = %s, want 250000", r.Profit)
	}
}

func TestScenario_Validate(t *testing.T) {
	valid := DevelopmentExample()
	testCases := []struct {
		name   string
		modify func(*Scenario)
	}{
		{name: "no name", modify: func(s *Scenario) { s.Name = " " }},
		{name: "negative duration", modify: func(s *Scenario) { s.Duration = -1 }},
		{name: "zero equity", modify: func(s *Scenario) { s.Equity = D(0) }},
		{name: "single flow", modify: func(s *Scenario) { s.Flows = Flows(-400000) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.modify(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
			if _, err := s.Compute(DefaultSolver); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Compute() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDecodeScenario(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		wantEquity   float64
		wantCurrency string
		wantFlows    string
		wantErr      bool
	}{
		{
			name:         "full",
			input:        `{"name":"a","currency":"EUR","equity":400000,"duration":2,"flows":[-400000,0,650000]}`,
			wantEquity:   400000,
			wantCurrency: "EUR",
			wantFlows:    "[-400000, 0, 650000]",
		},
		{
			name:         "equity from the first flow",
			input:        `{"name":"a","duration":1,"flows":["-100.5","150"]}`,
			wantEquity:   100.5,
			wantCurrency: "USD",
			wantFlows:    "[-100.5, 150]",
		},
		{
			name:    "unknown field",
			input:   `{"name":"a","flows":[-1,2],"irr":3}`,
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   `{"name":"a","flows":[-1,"two"]}`,
			wantErr: true,
		},
		{
			name:    "too few flows",
			input:   `{"name":"a","flows":[-1]}`,
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   `{"name":`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := DecodeScenario(strings.NewReader(tc.input), "USD")
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("DecodeScenario() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeScenario() error = %v", err)
			}
			if !s.Equity.Equal(D(tc.wantEquity)) {
				t.Errorf("Equity = %s, want %v", s.Equity, tc.wantEquity)
			}
			if s.Currency != tc.wantCurrency {
				t.Errorf("Currency = %q, want %q", s.Currency, tc.wantCurrency)
			}
			if got := s.Flows.String(); got != tc.wantFlows {
				t.Errorf("Flows = %s, want %s", got, tc.wantFlows)
			}
		})
	}
}

func TestScenario_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DevelopmentExample())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s, err := DecodeScenario(strings.NewReader(string(data)), "")
	if err != nil {
		t.Fatalf("DecodeScenario(%s) error = %v", data, err)
	}
	want := DevelopmentExample()
	if s.Name != want.Name || s.Currency != want.Currency || s.Duration != want.Duration || !s.Equity.Equal(want.Equity) {
		t.Errorf("DecodeScenario() = %+v, want %+v", s, want)
	}
	if s.Flows.String() != want.Flows.String() {
		t.Errorf("Flows = %s, want %s", s.Flows, want.Flows)
	}
}

func TestExtractFlows(t *testing.T) {
	const doc = `{
		"project": {"name": "tower", "equity": {"flows": [-500, 0, "125.5", 700]}},
		"other": {"flows": [-1, {"x": 1}]}
	}`
	var v any
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "nested", path: "$.project.equity.flows", want: "[-500, 0, 125.5, 700]"},
		{name: "not an array", path: "$.project.name", wantErr: true},
		{name: "not numbers", path: "$.other.flows", wantErr: true},
		{name: "missing", path: "$.nothing.flows", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractFlows(v, tc.path)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ExtractFlows() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractFlows() error = %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("ExtractFlows() = %s, want %s", got, tc.want)
			}
		})
	}
}
