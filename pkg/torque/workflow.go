package torque

import (
	"context"
	"fmt"
	"time"
)

// The environments endpoint answers 202 when the instantiation is queued;
// the action endpoint never does. Keep the two sets separate.
var workflowSuccessStatuses = []int{200, 201, 202}

// InstantiationName derives the execution name used when the caller does
// not supply one: {workflow}__instantiation__{YYYYMMDD_HHMMSS_mmm}. The
// millisecond suffix is the first three digits of the microsecond field,
// matching the naming Torque expects for workflow instantiations.
func InstantiationName(workflowName string, now time.Time) string {
	return fmt.Sprintf("%s__instantiation__%s_%03d",
		workflowName, now.Format("20060102_150405"), now.Nanosecond()/1e6)
}

// EnvironmentName derives the human-readable environment name for a
// workflow run: {workflow}-{YYYYMMDDTHHMMSS}{uuuu}, where the trailing four
// digits are the leading four of the microsecond field. This name is always
// generated, never caller-supplied.
func EnvironmentName(workflowName string, now time.Time) string {
	return fmt.Sprintf("%s-%s%04d",
		workflowName, now.Format("20060102T150405"), now.Nanosecond()/1e5)
}

// RunWorkflow instantiates a workflow (blueprint) against a resource by
// creating an environment scoped to it. On success the response's
// "outputs" mapping, when present, is surfaced on the Result.
func (c *Client) RunWorkflow(ctx context.Context, target Target, spec WorkflowSpec) (*Result, error) {
	if c.dryRun {
		return &Result{
			Changed:   true,
			Simulated: true,
			Response: map[string]interface{}{
				"status":  "check_mode",
				"message": "Would execute workflow in normal mode",
			},
			Outputs: map[string]interface{}{},
		}, nil
	}

	url := fmt.Sprintf("%s/api/spaces/%s/environments", c.apiURL, target.Space)

	now := time.Now()
	executionName := spec.ExecutionName
	if executionName == "" {
		executionName = InstantiationName(spec.WorkflowName, now)
	}

	inputs := spec.Inputs
	if inputs == nil {
		inputs = map[string]string{}
	}

	body := map[string]interface{}{
		"environment_name": EnvironmentName(spec.WorkflowName, now),
		"blueprint_name":   spec.WorkflowName,
		"inputs":           inputs,
		"source": map[string]interface{}{
			"repository_name": spec.RepositoryName,
		},
		// The API expects this field as the string "false", not a bool.
		"automation":  "false",
		"owner_email": spec.OwnerEmail,
		"entity_metadata": map[string]interface{}{
			"type":           "env_resource",
			"environment_id": target.Environment,
			"grain_path":     target.GrainFullname,
			"resource_id":    target.Resource,
		},
		"env_references_values": map[string]interface{}{},
		"instantiation_name":    executionName,
	}

	response, err := c.postJSON(ctx, "run_workflow", url, body,
		workflowSuccessStatuses,
		"Workflow executed successfully",
		"with message:")
	if err != nil {
		return nil, err
	}

	outputs := map[string]interface{}{}
	if o, ok := response["outputs"].(map[string]interface{}); ok {
		outputs = o
	}

	return &Result{
		Changed:  true,
		Response: response,
		Outputs:  outputs,
	}, nil
}
