package model

// ResultError describes a single reason an identity mutation was rejected.
type ResultError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result is the structured outcome of an identity mutation. Callers branch on
// Succeeded and inspect Errors instead of a bare boolean.
type Result struct {
	Succeeded bool          `json:"succeeded"`
	Errors    []ResultError `json:"errors,omitempty"`
}

// Success returns a succeeded Result.
func Success() Result {
	return Result{Succeeded: true}
}

// Failed returns a failed Result carrying the given errors.
func Failed(errs ...ResultError) Result {
	return Result{Succeeded: false, Errors: errs}
}

const (
	// ResultCodeStoreFailure marks a mutation the underlying store rejected.
	ResultCodeStoreFailure = "store_failure"
	// ResultCodeRoleMissing marks a role operation against an absent role.
	ResultCodeRoleMissing = "role_missing"
	// ResultCodeRoleExists marks creation of an already existing role.
	ResultCodeRoleExists = "role_exists"
)
