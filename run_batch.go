package main

import (
	"log"
	"path/filepath"

	"SplashKit/config"
	"SplashKit/dialogue"
	"SplashKit/emitter"
	"SplashKit/utils"
)

// --- Batch Conversion Function ---
func RunBatch(configPath string) {
	// --- Load Config ---
	jobConfigs, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if len(jobConfigs) == 0 {
		log.Println("No jobs configured in", configPath, ". Nothing to convert.")
		log.Println("Hint: Run with -bootstrap to configure jobs from the 'assets' directory.")
		return
	}

	// --- Job Selection based on Config ---
	selectedConfigs, err := dialogue.ShowConfigSelection(jobConfigs)
	if err != nil {
		log.Fatalf("Job selection failed: %v", err)
	}
	if len(selectedConfigs) == 0 {
		log.Println("No jobs selected for conversion.")
		return
	}

	log.Printf("Processing %d selected job(s).", len(selectedConfigs))

	// Clear stale generated headers once per output directory
	resetDirs := make(map[string]bool)
	for _, cfg := range selectedConfigs {
		dir := filepath.Dir(cfg.OutputFile)
		if !resetDirs[dir] {
			utils.Reset(dir)
			resetDirs[dir] = true
		}
	}

	converted := 0
	for _, cfg := range selectedConfigs {
		log.Printf("--- Processing job: %s ---", cfg.Name)
		err := emitter.ConvertWithOptions(cfg.InputFile, cfg.OutputFile, emitter.Options{
			ArrayName: cfg.ArrayName,
			GuardName: cfg.GuardName,
		})
		if err != nil {
			log.Printf("ERROR: %s: %v", cfg.Name, err)
			continue // Keep going; remaining jobs are independent
		}
		log.Printf("%s: Conversion completed successfully.", cfg.Name)
		converted++
	}

	log.Printf("Converted %d of %d selected job(s).", converted, len(selectedConfigs))
}
