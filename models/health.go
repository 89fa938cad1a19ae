package models

import (
	"encoding/json"
	"fmt"
)

type HealthGetResponse struct {
	Status string `json:"status"`
	// VectorStoreCount is the number of documents in the vector store, if
	// the service reports it.
	VectorStoreCount *int `json:"vector_store_count,omitempty"`
}

// DocumentCount returns the vector store count, or zero if it was not reported.
func (r HealthGetResponse) DocumentCount() int {
	if r.VectorStoreCount == nil {
		return 0
	}
	return *r.VectorStoreCount
}

func (r *HealthGetResponse) UnmarshalJSON(data []byte) (err error) {
	var w struct {
		Status           *string `json:"status"`
		VectorStoreCount *int    `json:"vector_store_count"`
	}
	if err = json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Status == nil {
		return fmt.Errorf("status: %w", ErrMissingField)
	}
	*r = HealthGetResponse{
		Status:           *w.Status,
		VectorStoreCount: w.VectorStoreCount,
	}
	return nil
}
