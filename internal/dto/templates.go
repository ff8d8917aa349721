package dto

// CreateTemplateRequest is the payload for POST /templates.
type CreateTemplateRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// UpdateTemplateRequest carries a partial template mutation.
type UpdateTemplateRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}
