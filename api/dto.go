package api

import "github.com/YashVerma-code/OS-Assignment/sim"

// SimulateRequest is the body of the simulate and compare endpoints.
type SimulateRequest struct {
	Quantum   int64            `json:"quantum"`
	Horizon   int64            `json:"horizon"`
	Trace     bool             `json:"trace"`
	Processes []sim.Descriptor `json:"processes"`
	// Policies restricts a comparison; empty compares every policy.
	Policies []string `json:"policies,omitempty"`
}

// Config builds the run configuration for policy.
func (r *SimulateRequest) Config(policy string) sim.Config {
	cfg := sim.Config{Policy: policy, Quantum: r.Quantum, Horizon: r.Horizon}
	if r.Trace {
		cfg.TraceLevel = "events"
	}
	return cfg
}

// PoliciesResponse lists the dispatch policies the server can run.
type PoliciesResponse struct {
	Policies       []string `json:"policies"`
	DefaultPolicy  string   `json:"default_policy"`
	DefaultQuantum int64    `json:"default_quantum"`
}

// CompareResponse holds one result per compared policy, in request order.
type CompareResponse struct {
	Results []*sim.Result `json:"results"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
