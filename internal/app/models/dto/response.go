package dto

// CreateResponse is returned after a successful create.
type CreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned after a successful update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}
