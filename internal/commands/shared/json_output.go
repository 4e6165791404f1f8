package shared

import (
	"encoding/json"
	"os"
)

// JSONResponse is the base envelope for all JSON output.
type JSONResponse struct {
	Command string `json:"command"`
	Success bool   `json:"success"`
	Changed bool   `json:"changed"`
}

// EmitJSON marshals a response to JSON and writes it to stdout.
// This keeps formatting consistent across all commands.
func EmitJSON(response interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}
