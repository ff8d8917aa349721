package dto

// CreateCallListRequest is the payload for POST /call-lists.
type CreateCallListRequest struct {
	Name string `json:"name"`
}
