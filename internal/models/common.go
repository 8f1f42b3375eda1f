package models

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// AdminIdentity describes the administrator performing a request. It is resolved
// by the gateway and forwarded via trusted headers; this service does not verify
// credentials itself.
type AdminIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
