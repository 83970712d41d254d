package models

// DataResponse is the envelope for every successful reply.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// PagedResponse wraps a list reply together with its paging metadata.
type PagedResponse struct {
	Data   interface{}  `json:"data"`
	Paging PageMetadata `json:"paging"`
}

// ErrorResponse is the envelope for every failed reply. Errors holds either a
// plain message string or a list of FieldError.
type ErrorResponse struct {
	Errors interface{} `json:"errors"`
}

// PageMetadata reports the position of a page within the full result set.
type PageMetadata struct {
	Page      int   `json:"page"`
	Size      int   `json:"size"`
	TotalItem int64 `json:"total_item"`
	TotalPage int64 `json:"total_page"`
}
