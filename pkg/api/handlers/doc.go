// Package handlers implements the HTTP handlers of the bfhl service.
//
// BFHLHandler serves POST and GET on the classification paths:
//
//	POST /bfhl  {"data": ["M", "1", "334", "4", "B"]}
//	  -> 200 {"is_success": true, "user_id": "...", "email": "...",
//	          "roll_number": "...", "numbers": ["1", "334", "4"],
//	          "alphabets": ["M", "B"], "highest_alphabet": "M"}
//
//	GET /bfhl
//	  -> 200 {"operation_code": 1}
//
// Malformed bodies receive 400 {"is_success": false, "message": "Invalid
// input format"}.
package handlers
