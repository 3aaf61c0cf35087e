package v1

// QueryRequest is a natural language inventory query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// QueryResponse carries the agent's final answer.
type QueryResponse struct {
	Response string `json:"response"`
}

// ErrorResponse mirrors the inventory service's error shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
