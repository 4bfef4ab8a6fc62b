package types

// ClassifyRequest is the body accepted by POST on the classification
// endpoint. Keys other than data are ignored.
type ClassifyRequest struct {
	Data []string `json:"data"`
}
