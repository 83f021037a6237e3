package response

// Resp is the standard JSON error envelope returned by the chatbot API.
// Success payloads carry endpoint-specific bodies; failures always look
// like {"success": false, "error": "..."}.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
