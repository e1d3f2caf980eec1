// reset.go
package utils

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Reset cleans the target directory of previously generated headers. Only .h
// files carrying the auto-generated annotation are removed, so hand-written
// headers sitting in the same directory survive.
func Reset(targetDir string) {
	log.Printf("Starting header reset for directory: %s", targetDir)

	// 1. Ensure target directory exists
	log.Printf("Ensuring directory '%s' exists...", targetDir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		log.Fatalf("Failed to create directory '%s': %v", targetDir, err)
	}

	// 2. Clean generated .h files from the target directory
	log.Printf("Cleaning generated header files in directory '%s'...", targetDir)
	dirEntries, err := ioutil.ReadDir(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Directory '%s' does not exist yet, nothing to clean.", targetDir)
			log.Println("Reset step complete (directory created).")
			return
		}
		log.Fatalf("Failed to read directory '%s': %v", targetDir, err)
	}

	filesRemoved := 0
	for _, entry := range dirEntries {
		entryName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(entryName, ".h") {
			continue
		}
		filePath := filepath.Join(targetDir, entryName)
		if !isGeneratedHeader(filePath) {
			log.Printf("  Preserving non-generated header: %s", filePath)
			continue
		}
		log.Printf("  Removing generated file: %s", filePath)
		if err := os.Remove(filePath); err != nil {
			log.Printf("  Warning: Failed to remove file '%s': %v", filePath, err)
		} else {
			filesRemoved++
		}
	}
	log.Printf("Removed %d generated header file(s) from '%s'.", filesRemoved, targetDir)

	log.Println("Reset step complete.")
}

// isGeneratedHeader reports whether the file carries the converter's
// annotation comment.
func isGeneratedHeader(path string) bool {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), "// Auto-generated from ")
}
