package models

// DocumentsInitializePostResponse is returned by the mock service. The
// client only cares whether the call succeeded.
type DocumentsInitializePostResponse struct {
	Status    string `json:"status"`
	Documents int    `json:"documents"`
}
