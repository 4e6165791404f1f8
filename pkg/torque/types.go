package torque

// Target identifies where an action or workflow runs. All four fields are
// opaque strings; the remote service is authoritative about their format.
type Target struct {
	// Space is the Torque space name
	Space string

	// Environment is the environment ID within the space
	Environment string

	// GrainFullname is the grain full name path
	GrainFullname string

	// Resource is the resource identifier within the grain
	Resource string
}

// WorkflowSpec describes one workflow instantiation against a resource.
type WorkflowSpec struct {
	// WorkflowName is the workflow/blueprint name to execute
	WorkflowName string

	// RepositoryName is the repository containing the workflow
	RepositoryName string

	// OwnerEmail is the email address of the workflow owner
	OwnerEmail string

	// Inputs are the named workflow inputs (may be empty)
	Inputs map[string]string

	// ExecutionName is the caller-supplied instantiation name. When empty,
	// a name is generated as {workflow}__instantiation__{timestamp}.
	ExecutionName string
}

// Result is the normalized outcome of a successful invocation.
type Result struct {
	// Changed reports whether the remote system was (or would be) modified
	Changed bool

	// Simulated is true when the result came from a dry run and no
	// network call was made
	Simulated bool

	// Response is the parsed API response payload
	Response map[string]interface{}

	// Outputs is the "outputs" sub-mapping of the response. Only the
	// workflow path populates it; it is empty, never nil, when the
	// response carries no outputs.
	Outputs map[string]interface{}
}
