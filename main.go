// project/main.go
package main

//go:generate go run . // Tells 'go generate' to regenerate the splash header

import (
	"flag"
	"fmt"
	"log"
	"os"

	"SplashKit/emitter"
)

// Paths used by the original splash screen build step. Running with no flags
// reproduces it exactly.
const (
	defaultInput  = "../CompanySplashScreen.png"
	defaultOutput = "splash_image_data.h"
)

const (
	sourceDir  = "assets"    // scanned by -bootstrap for embeddable images
	headersDir = "generated" // batch/manifest output location
)

func main() {
	// Define flags
	inputFile := flag.String("input", defaultInput, "Input image file")
	outputFile := flag.String("output", defaultOutput, "Output header file")
	arrayName := flag.String("array", emitter.DefaultArrayName, "C identifier for the byte array")
	guardName := flag.String("guard", emitter.DefaultGuardName, "Include guard macro")
	configPath := flag.String("config", "splash_jobs.json", "Splash job configuration file")
	manifestPath := flag.String("manifest", "", "YAML manifest of conversion jobs")
	bootstrap := flag.Bool("bootstrap", false, "Scan the assets directory and register jobs")
	batch := flag.Bool("batch", false, "Convert the configured jobs")

	flag.Parse() // Parse command-line arguments

	switch {
	case *bootstrap:
		if err := RunBootstrap(*configPath); err != nil {
			log.Fatalf("Bootstrap failed: %v", err)
		}

	case *batch:
		RunBatch(*configPath)

	case *manifestPath != "":
		if err := RunManifest(*manifestPath, headersDir); err != nil {
			log.Fatalf("Manifest run failed: %v", err)
		}

	default:
		fmt.Println("Starting image conversion...")
		err := emitter.ConvertWithOptions(*inputFile, *outputFile, emitter.Options{
			ArrayName: *arrayName,
			GuardName: *guardName,
		})
		if err != nil {
			log.Printf("Error: %v", err)
			fmt.Println("Image conversion failed!")
			os.Exit(1)
		}
		fmt.Println("Image conversion completed successfully!")
	}
}
