// validator.go
package utils

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"SplashKit/structs"

	"github.com/knetic/govaluate"
	"gopkg.in/yaml.v2"
)

// ValidateAndReformManifest reads the original manifest, validates/reforms
// its jobs, and saves the result into the output directory. It returns the
// path to the saved reformed manifest file.
func ValidateAndReformManifest(originalManifestPath, outputDir string) (string, error) {
	// Calculate the path where the reformed manifest should reside inside the output dir
	reformedPath := filepath.Join(outputDir, filepath.Base(originalManifestPath))

	log.Printf("Validating/Reforming '%s' -> '%s'", originalManifestPath, reformedPath)

	// --- 1. Ensure output directory exists ---
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure output directory '%s': %w", outputDir, err)
	}

	// --- 2. Read and Unmarshal the original manifest ---
	manifestData, err := ioutil.ReadFile(originalManifestPath)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest file '%s': %w", originalManifestPath, err)
	}
	var manifest structs.Manifest
	err = yaml.Unmarshal(manifestData, &manifest)
	if err != nil {
		yamlErr, ok := err.(*yaml.TypeError)
		if ok {
			for _, msg := range yamlErr.Errors {
				log.Printf("YAML unmarshal error in %s: %s", originalManifestPath, msg)
			}
		}
		return "", fmt.Errorf("error unmarshaling manifest from %s: %w", originalManifestPath, err)
	}

	if len(manifest.Jobs) == 0 {
		return "", fmt.Errorf("manifest '%s' defines no jobs", originalManifestPath)
	}

	// --- 3. Validate and Reform Jobs ---
	reformationsMade := 0
	validationErrors := 0

	jobNames := make([]string, 0, len(manifest.Jobs))
	for name := range manifest.Jobs {
		jobNames = append(jobNames, name)
	}
	sort.Strings(jobNames) // Sort for consistent log output

	for _, jobName := range jobNames {
		job := manifest.Jobs[jobName]

		if strings.TrimSpace(job.Input) == "" {
			log.Printf("ERROR: Validation error in job '%s': 'input' is missing.", jobName)
			validationErrors++
			continue
		}

		// Reform a missing or placeholder output to a name derived from the input
		if strings.TrimSpace(job.Output) == "" || strings.TrimSpace(job.Output) == "..." {
			base := strings.TrimSuffix(filepath.Base(job.Input), filepath.Ext(job.Input))
			derived := strings.ToLower(base) + "_data.h"
			log.Printf("WARNING: Reforming job '%s': missing 'output'. Using '%s'.", jobName, derived)
			job.Output = derived
			reformationsMade++
		}

		// bytesPerRow must be a positive integer when present
		if job.BytesPerRow != "" {
			n, errConv := job.GetBytesPerRow()
			if errConv != nil {
				log.Printf("ERROR: Validation error in job '%s': %v", jobName, errConv)
				validationErrors++
			} else if n <= 0 {
				log.Printf("ERROR: Validation error in job '%s': non-positive 'bytesPerRow: %s'", jobName, job.BytesPerRow)
				validationErrors++
			}
		}

		// Check expression must parse if present
		if job.HasCheck() {
			if !IsValidCheckExpression(job.Check) {
				log.Printf("WARNING: Reforming job '%s': placeholder 'check' expression removed.", jobName)
				job.Check = ""
				reformationsMade++
			} else {
				_, errExpr := govaluate.NewEvaluableExpressionWithFunctions(job.Check, GetExpressionFunctions())
				if errExpr != nil {
					log.Printf("ERROR: Validation error in job '%s': invalid 'check' expression '%s': %v", jobName, job.Check, errExpr)
					validationErrors++
				}
			}
		}

		manifest.Jobs[jobName] = job
	}

	if validationErrors > 0 {
		return "", fmt.Errorf("manifest '%s' failed validation with %d error(s)", originalManifestPath, validationErrors)
	}
	if reformationsMade > 0 {
		log.Printf("Applied %d reformation(s) to manifest '%s'.", reformationsMade, originalManifestPath)
	}

	// --- 4. Save the reformed manifest ---
	reformedData, err := yaml.Marshal(&manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal reformed manifest: %w", err)
	}
	if err := ioutil.WriteFile(reformedPath, reformedData, 0644); err != nil {
		return "", fmt.Errorf("failed to write reformed manifest '%s': %w", reformedPath, err)
	}

	log.Printf("Saved reformed manifest: %s", reformedPath)
	return reformedPath, nil
}
