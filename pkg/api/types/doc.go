// Package types defines the JSON bodies exchanged on the classification
// endpoint: the request, the success envelope, the operation code response
// and the error body.
package types
