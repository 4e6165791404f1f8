package shared

import (
	"encoding/json"
	"fmt"

	"github.com/dbs-cloud/torquectl/internal/secrets"
	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// invocationResponse is the JSON envelope for action and workflow results.
type invocationResponse struct {
	JSONResponse
	Simulated bool                   `json:"simulated,omitempty"`
	Message   string                 `json:"msg"`
	Response  map[string]interface{} `json:"response"`
	Outputs   map[string]interface{} `json:"outputs,omitempty"`
}

// PrintResult renders an invocation result, masking secret values. The
// outputs mapping is included only when the result carries one (the action
// path never does).
func PrintResult(command string, res *torque.Result, masker *secrets.Masker, msg string) error {
	response := masker.MaskMap(res.Response)

	var outputs map[string]interface{}
	if res.Outputs != nil {
		outputs = masker.MaskMap(res.Outputs)
	}

	if GetJSON() {
		return EmitJSON(invocationResponse{
			JSONResponse: JSONResponse{
				Command: command,
				Success: true,
				Changed: res.Changed,
			},
			Simulated: res.Simulated,
			Message:   masker.Mask(msg),
			Response:  response,
			Outputs:   outputs,
		})
	}

	fmt.Println(masker.Mask(msg))
	if res.Simulated {
		fmt.Println("(check mode: no API call was made)")
	}

	if len(response) > 0 {
		rendered, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("\nResponse:\n%s\n", rendered)
	}

	if len(outputs) > 0 {
		fmt.Println("\nOutputs:")
		for k, v := range outputs {
			fmt.Printf("  %s: %v\n", k, v)
		}
	}

	return nil
}
