// project/structs/structs.go
package structs

import (
	"fmt"
	"strconv"
)

// Manifest describes a set of image-to-header conversion jobs, usually
// loaded from a splash.yml file.
type Manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Jobs        map[string]Job `yaml:"jobs"`
}

// Job is a single conversion: one input image embedded into one header.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Array and Guard override the default identifiers when set.
	Array string `yaml:"array,omitempty"`
	Guard string `yaml:"guard,omitempty"`
	// BytesPerRow is kept as a string so the manifest can leave it empty;
	// it must parse to a positive integer when present.
	BytesPerRow string `yaml:"bytesPerRow,omitempty"`
	// Check is an optional size guard expression, e.g. "size <= MiB(4)".
	Check string `yaml:"check,omitempty"`
}

func (j *Job) GetBytesPerRow() (int, error) {
	// If BytesPerRow is empty, return 0 (caller applies the default)
	if j.BytesPerRow == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(j.BytesPerRow)
	if err != nil {
		return 0, fmt.Errorf("invalid bytesPerRow %q: %w", j.BytesPerRow, err)
	}

	return n, nil
}

func (j *Job) HasCheck() bool {
	return j.Check != ""
}
