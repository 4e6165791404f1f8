package torque

import (
	"context"
	"fmt"
)

var actionSuccessStatuses = []int{200, 201}

// RunAction triggers a predefined action on a resource within an
// environment. The force flag is passed through to the API unchanged.
//
// The action endpoint treats only 200 and 201 as success; unlike the
// workflow endpoint it never answers 202, and its responses carry no
// outputs mapping.
func (c *Client) RunAction(ctx context.Context, target Target, actionID string, force bool) (*Result, error) {
	if c.dryRun {
		return &Result{
			Changed:   true,
			Simulated: true,
			Response: map[string]interface{}{
				"status":  "check_mode",
				"message": "Would execute action in normal mode",
			},
		}, nil
	}

	url := fmt.Sprintf("%s/api/spaces/%s/environments/%s/%s/%s/run_action/%s",
		c.apiURL, target.Space, target.Environment, target.GrainFullname, target.Resource, actionID)

	body := map[string]interface{}{"force": force}

	response, err := c.postJSON(ctx, "run_action", url, body,
		actionSuccessStatuses,
		"Action executed successfully",
		"and message:")
	if err != nil {
		return nil, err
	}

	return &Result{
		Changed:  true,
		Response: response,
	}, nil
}
