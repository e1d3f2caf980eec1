package dialogue

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"SplashKit/config"
)

// ShowSourceFileSelection prompts the user to select from discovered image files.
func ShowSourceFileSelection(imageFiles []string) ([]string, error) {
	if len(imageFiles) == 0 {
		return []string{}, nil
	}
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nAvailable source images:")
	for i, file := range imageFiles {
		fmt.Printf("%d. %s\n", i+1, file)
	}

	fmt.Print("\nSelect image(s) to register (e.g., 1,3,4), or press Enter for all: ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return imageFiles, nil // Return all if no selection
	}

	var selectedFiles []string
	parts := strings.Split(input, ",")
	for _, part := range parts {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > len(imageFiles) {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, len(imageFiles))
		}
		selectedFiles = append(selectedFiles, imageFiles[idx-1])
	}

	// Remove duplicates if any (though unlikely with numeric input)
	uniqueFiles := make([]string, 0, len(selectedFiles))
	seen := make(map[string]bool)
	for _, file := range selectedFiles {
		if !seen[file] {
			uniqueFiles = append(uniqueFiles, file)
			seen[file] = true
		}
	}
	return uniqueFiles, nil
}

// ShowConfigSelection prompts the user to select from configured splash jobs.
func ShowConfigSelection(jobConfigs []config.SplashConfig) ([]config.SplashConfig, error) {
	if len(jobConfigs) == 0 {
		return []config.SplashConfig{}, nil
	}
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nConfigured splash jobs:")
	for i, cfg := range jobConfigs {
		fmt.Printf("%d. %s (%s -> %s)\n", i+1, cfg.Name, cfg.InputFile, cfg.OutputFile)
	}

	fmt.Print("\nSelect job(s) to convert (e.g., 1,3,4), or press Enter for all: ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return jobConfigs, nil // Return all if no selection
	}

	var selectedConfigs []config.SplashConfig
	parts := strings.Split(input, ",")
	for _, part := range parts {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > len(jobConfigs) {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, len(jobConfigs))
		}
		selectedConfigs = append(selectedConfigs, jobConfigs[idx-1])
	}
	// Remove duplicates
	uniqueConfigs := make([]config.SplashConfig, 0, len(selectedConfigs))
	seen := make(map[string]bool)
	for _, cfg := range selectedConfigs {
		if !seen[cfg.Name] { // Use Name as unique identifier
			uniqueConfigs = append(uniqueConfigs, cfg)
			seen[cfg.Name] = true
		}
	}
	return uniqueConfigs, nil
}
