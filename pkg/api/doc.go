// Package api implements the request/response contract of the
// classification endpoint.
//
// A request body must be a JSON object with a data member holding an array
// of strings:
//
//	{"data": ["M", "1", "334", "4", "B"]}
//
// ValidateBody and ParseClassifyRequest reject anything else with a
// *ValidationError (HTTP 400), or a *RequestTooLargeError (HTTP 413) when
// the body exceeds the configured limit. AssembleEnvelope turns a
// classification result into the success envelope:
//
//	{
//	    "is_success": true,
//	    "user_id": "john_doe_17091999",
//	    "email": "john@xyz.com",
//	    "roll_number": "ABCD123",
//	    "numbers": ["1", "334", "4"],
//	    "alphabets": ["M", "B"],
//	    "highest_alphabet": "M"
//	}
//
// HandleError maps any other error to HTTP 500 with a generic message so
// internal details never reach the client.
package api
