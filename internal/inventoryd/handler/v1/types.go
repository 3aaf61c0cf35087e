package v1

// UpdateRequest is the POST /inventory body.
type UpdateRequest struct {
	// Item is the inventory item identifier. Must match the store's
	// recognized items exactly; the agent layer does not normalize names.
	Item string `json:"item"`

	// Change is the quantity to add (positive) or remove (negative).
	Change int `json:"change"`
}

// ErrorResponse is the 400 body for business rejections.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationIssue mirrors the FastAPI/pydantic error item shape so clients
// written against the original service keep working.
type ValidationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ValidationErrorResponse is the 422 body.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}
