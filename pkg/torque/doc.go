// Package torque is a minimal client for the Torque orchestration REST API.
//
// The package covers the two invocation surfaces a pipeline needs when it
// runs inside a Torque grain:
//   - triggering a predefined action on a resource inside an environment
//   - instantiating a workflow (blueprint) against a resource
//
// plus the grain-outputs exporter that hands values back to Torque through
// the torque-outputs.json contract.
//
// Example usage:
//
//	client, err := torque.NewClient(torque.ClientOptions{
//	    APIToken: os.Getenv("TORQUE_API_TOKEN"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	target := torque.Target{
//	    Space:         "production",
//	    Environment:   "env_12345",
//	    GrainFullname: "web-server",
//	    Resource:      "aws_instance.web_1",
//	}
//	result, err := client.RunAction(ctx, target, "restart-service", false)
//
// Every invocation is a single synchronous POST with a hard 30 second
// timeout. The client never retries: Torque actions are not idempotent and
// the surrounding pipeline owns any re-run policy. Failures surface as typed
// errors (ConfigurationError, TransportError, APIError) that callers can
// distinguish with errors.As.
//
// # Response classification
//
// The action endpoint accepts 200 and 201 as success; the environments
// endpoint additionally accepts 202 (queued). This asymmetry is part of the
// remote API contract and is preserved here. A success response with an
// unparseable body is still a success: the client synthesizes a generic
// payload instead of failing. An error response is mined for a "message"
// field, and any problem encountered while mining falls back to the generic
// status text so a diagnostic failure can never mask the original one.
package torque
