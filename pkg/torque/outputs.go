package torque

import (
	"encoding/json"
	"os"
)

// OutputsFileName is the fixed file name Torque reads grain outputs from.
// The file is always written to the process working directory.
const OutputsFileName = "torque-outputs.json"

// WriteOutputs serializes the supplied outputs mapping to
// torque-outputs.json in the current working directory, replacing any
// previous contents. The file holds exactly the caller-supplied mapping;
// nothing is merged in.
func WriteOutputs(outputs map[string]interface{}) error {
	return WriteOutputsFile(outputs, OutputsFileName)
}

// WriteOutputsFile is WriteOutputs with an explicit destination path,
// primarily for tests.
func WriteOutputsFile(outputs map[string]interface{}, path string) error {
	data, err := json.Marshal(outputs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
