package types

// Identity holds the fixed identity fields returned with every successful
// classification. It never depends on the request.
type Identity struct {
	UserID     string
	Email      string
	RollNumber string
}

// Envelope is the successful classification response.
type Envelope struct {
	// IsSuccess is always true.
	IsSuccess bool `json:"is_success"`

	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`

	// Numbers holds the numeric tokens in input order. Encoded as [] when empty.
	Numbers []string `json:"numbers"`

	// Alphabets holds the single-letter tokens in input order. Encoded as []
	// when empty.
	Alphabets []string `json:"alphabets"`

	// HighestAlphabet is omitted when no alphabetic token was found.
	HighestAlphabet string `json:"highest_alphabet,omitempty"`
}

// OperationResponse is returned by GET on the classification endpoint.
type OperationResponse struct {
	OperationCode int `json:"operation_code"`
}
