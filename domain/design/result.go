package design

// PowerResult carries the power value together with every intermediate
// quantity of the computation, for diagnostics and regression pinning.
type PowerResult struct {
	Power         float64 `json:"power"`
	NCP           float64 `json:"ncp"`
	DF            float64 `json:"dof"`
	TCritUpper    float64 `json:"t_crit_upper"`
	TCritLower    float64 `json:"t_crit_lower"`
	CDFUpper      float64 `json:"cdf_upper"`
	CDFLower      float64 `json:"cdf_lower"`
	TotalVariance float64 `json:"v"`
	StandardizedD float64 `json:"d_stdz"`
}

// SolveDiagnostics reports how the optimizer behaved, whether or not
// it found an answer.
type SolveDiagnostics struct {
	Iterations      int     `json:"iterations"`
	FuncEvaluations int     `json:"func_evaluations"`
	FinalObjective  float64 `json:"final_objective"`
	Minimizer       float64 `json:"minimizer"`
	Converged       bool    `json:"converged"`
	Status          string  `json:"status"`
}

// SolveOutcome is the explicit result of a sample-size search: either
// a solved integer count (Found true) or a structured failure, always
// with diagnostics attached.
type SolveOutcome struct {
	Variable      Variable         `json:"variable"`
	N             int              `json:"n"`
	Found         bool             `json:"found"`
	TargetPower   float64          `json:"target_power"`
	AchievedPower float64          `json:"achieved_power"`
	FailureReason string           `json:"failure_reason,omitempty"`
	Diagnostics   SolveDiagnostics `json:"diagnostics"`
}
