package types

// PaginationResponse represents offset/limit window metadata in API responses
type PaginationResponse struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Count   int  `json:"count"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// NewPaginationResponse derives the has_prev/has_next flags from the window.
func NewPaginationResponse(offset, limit, total, count int) *PaginationResponse {
	return &PaginationResponse{
		Offset:  offset,
		Limit:   limit,
		Total:   total,
		Count:   count,
		HasPrev: offset > 0,
		HasNext: offset+count < total,
	}
}

// Response represents the standard API response wrapper
type Response struct {
	Success    bool                `json:"success"`
	Data       interface{}         `json:"data,omitempty"`
	Error      *Error              `json:"error,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// SuccessResponseWithPagination creates a successful API response with pagination
func SuccessResponseWithPagination(data interface{}, pagination *PaginationResponse) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	}
}
