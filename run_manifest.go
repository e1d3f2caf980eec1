package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"

	"SplashKit/emitter"
	"SplashKit/structs"
	"SplashKit/utils"

	"gopkg.in/yaml.v2"
)

// RunManifest validates a YAML job manifest and converts every job it
// defines. Relative job outputs land in outputDir, next to the reformed
// manifest copy.
func RunManifest(manifestPath, outputDir string) error {
	reformedPath, err := utils.ValidateAndReformManifest(manifestPath, outputDir)
	if err != nil {
		return err
	}

	manifestData, err := ioutil.ReadFile(reformedPath)
	if err != nil {
		return fmt.Errorf("failed to read reformed manifest %s: %w", reformedPath, err)
	}
	var manifest structs.Manifest
	if err := yaml.Unmarshal(manifestData, &manifest); err != nil {
		return fmt.Errorf("failed to parse reformed manifest %s: %w", reformedPath, err)
	}

	if manifest.Name != "" {
		log.Printf("Running manifest: %s", manifest.Name)
	}

	jobNames := make([]string, 0, len(manifest.Jobs))
	for name := range manifest.Jobs {
		jobNames = append(jobNames, name)
	}
	sort.Strings(jobNames) // Process in a stable order

	failures := 0
	for _, jobName := range jobNames {
		job := manifest.Jobs[jobName]
		log.Printf("--- Processing job: %s ---", jobName)

		outputFile := job.Output
		if !filepath.IsAbs(outputFile) {
			outputFile = filepath.Join(outputDir, outputFile)
		}

		info, err := os.Stat(job.Input)
		if os.IsNotExist(err) {
			log.Printf("ERROR: %s: input image not found: %s", jobName, job.Input)
			failures++
			continue
		} else if err != nil {
			log.Printf("ERROR: %s: %v", jobName, err)
			failures++
			continue
		}

		// Size guard runs against the stat size, before the image is read
		if job.HasCheck() {
			if err := utils.EvaluateSizeCheck(job.Check, int(info.Size())); err != nil {
				log.Printf("ERROR: %s: %v", jobName, err)
				failures++
				continue
			}
		}

		bytesPerRow, err := job.GetBytesPerRow() // validated already, but stay safe
		if err != nil {
			log.Printf("ERROR: %s: %v", jobName, err)
			failures++
			continue
		}

		err = emitter.ConvertWithOptions(job.Input, outputFile, emitter.Options{
			ArrayName:   job.Array,
			GuardName:   job.Guard,
			BytesPerRow: bytesPerRow,
		})
		if err != nil {
			log.Printf("ERROR: %s: %v", jobName, err)
			failures++
			continue
		}
		log.Printf("%s: Conversion completed successfully.", jobName)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d manifest job(s) failed", failures, len(jobNames))
	}
	log.Printf("All %d manifest job(s) completed.", len(jobNames))
	return nil
}
