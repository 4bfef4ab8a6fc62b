// bfhl serves the token classification API.
//
// POST /bfhl with {"data": [...]} splits the strings into digit-only numbers
// and single-letter alphabets and reports the highest alphabet. GET /bfhl
// returns the operation code.
//
// Usage:
//
//	# Start the server with defaults (127.0.0.1:8080)
//	bfhl run
//
//	# Start with a configuration file and reload it on change
//	bfhl run --config /etc/bfhl/config.yaml --watch
//
//	# Classify a request body offline
//	echo '{"data":["M","1","334","4","B"]}' | bfhl classify
//
//	# Check a configuration file
//	bfhl validate --config config.toml
//
//	# Show version information
//	bfhl version
package main

func main() {
	Execute()
}
