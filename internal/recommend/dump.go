package recommend

import (
	"encoding/json"
	"os"
)

// DumpToTmpFile writes the recommendations as indented JSON to a fresh
// temporary file and returns its name.
func DumpToTmpFile(recommendations []*Recommendation) (string, error) {
	file, err := os.CreateTemp("", "recommendations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recommendations); err != nil {
		return "", err
	}
	return file.Name(), nil
}
