package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"SplashKit/config"
	"SplashKit/dialogue"
	"SplashKit/utils"
)

// --- Bootstrap Function ---
func RunBootstrap(configPath string) error {
	log.Printf("Scanning '%s' directory for source images...", sourceDir)
	imageFiles, err := utils.FindImageFiles(sourceDir)
	if err != nil {
		return err
	}

	if len(imageFiles) == 0 {
		log.Printf("No image files found in '%s'. Nothing to bootstrap.", sourceDir)
		return nil
	}

	// --- Image Selection ---
	selectedImages, err := dialogue.ShowSourceFileSelection(imageFiles)
	if err != nil {
		return fmt.Errorf("image selection failed: %w", err)
	}
	if len(selectedImages) == 0 {
		log.Println("No images selected for bootstrapping.")
		return nil
	}

	log.Printf("Processing %d selected image(s) for bootstrap...", len(selectedImages))

	// --- Load existing config ---
	currentConfigs, err := config.LoadConfig(configPath)
	if err != nil {
		return err // Error handled in LoadConfig
	}
	configMap := make(map[string]int) // Map input path to index in currentConfigs
	for i, cfg := range currentConfigs {
		configMap[cfg.InputFile] = i
	}

	// --- Process selected images ---
	configUpdated := false
	for _, imageFile := range selectedImages {
		log.Printf("--- Bootstrapping from: %s ---", imageFile)

		// Derive names and paths
		baseName := strings.TrimSuffix(filepath.Base(imageFile), filepath.Ext(imageFile))
		outputFile := filepath.Join(headersDir, strings.ToLower(baseName)+"_data.h")
		jobName := strings.Title(strings.ToLower(baseName))

		if index, exists := configMap[imageFile]; exists {
			log.Printf("Job for '%s' already exists in configuration. Updating paths.", imageFile)
			currentConfigs[index].OutputFile = outputFile
			currentConfigs[index].ArrayName = utils.DeriveArrayName(imageFile)
			currentConfigs[index].GuardName = utils.DeriveGuardName(imageFile)
			configUpdated = true
		} else {
			log.Printf("Adding new job '%s' to configuration.", jobName)
			currentConfigs = append(currentConfigs, config.SplashConfig{
				Name:       jobName,
				InputFile:  imageFile,
				OutputFile: outputFile,
				ArrayName:  utils.DeriveArrayName(imageFile),
				GuardName:  utils.DeriveGuardName(imageFile),
			})
			configUpdated = true
		}
	}

	// --- Save updated config if changes were made ---
	if configUpdated {
		if err := config.SaveConfig(configPath, currentConfigs); err != nil {
			return err
		}
		log.Println("Configuration file updated.")
	} else {
		log.Println("No configuration changes needed.")
	}

	return nil
}
