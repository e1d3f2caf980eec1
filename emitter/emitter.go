package emitter

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Identifiers and layout used by the splash screen build. A zero Options
// value falls back to these, which reproduces the legacy converter output
// byte for byte.
const (
	DefaultArrayName   = "SPLASH_IMAGE_DATA"
	DefaultSizeName    = "SPLASH_IMAGE_SIZE"
	DefaultGuardName   = "SPLASH_IMAGE_DATA_H"
	DefaultBytesPerRow = 16
)

// ErrNotFound is returned when the input image does not exist. The check is
// performed up front so a missing input never produces a partial header.
var ErrNotFound = errors.New("input image not found")

// Options control the identifiers and row layout of the emitted header.
type Options struct {
	ArrayName   string
	SizeName    string
	GuardName   string
	BytesPerRow int
}

func (o Options) withDefaults() Options {
	if o.ArrayName == "" {
		o.ArrayName = DefaultArrayName
	}
	if o.SizeName == "" {
		// Keep the size constant paired with the array identifier:
		// FOO_DATA gets FOO_SIZE.
		switch {
		case o.ArrayName == DefaultArrayName:
			o.SizeName = DefaultSizeName
		case strings.HasSuffix(o.ArrayName, "_DATA"):
			o.SizeName = strings.TrimSuffix(o.ArrayName, "_DATA") + "_SIZE"
		default:
			o.SizeName = o.ArrayName + "_SIZE"
		}
	}
	if o.GuardName == "" {
		o.GuardName = DefaultGuardName
	}
	if o.BytesPerRow <= 0 {
		o.BytesPerRow = DefaultBytesPerRow
	}
	return o
}

// templateData holds all necessary info for template execution.
type templateData struct {
	GuardName string
	ArrayName string
	SizeName  string
	Basename  string
	Size      int
	Payload   string
}

// FormatPayload renders the byte rows of the array body. A line break and
// four-space indent precede every row, including the first; elements are
// comma separated with a single space except at row ends, and the final
// element carries no trailing comma.
func FormatPayload(data []byte, bytesPerRow int) string {
	var buf bytes.Buffer
	for i, b := range data {
		if i%bytesPerRow == 0 {
			buf.WriteString("\n    ")
		}
		fmt.Fprintf(&buf, "0x%02x", b)
		if i == len(data)-1 {
			break
		}
		buf.WriteByte(',')
		if (i+1)%bytesPerRow != 0 {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

// RenderHeader produces the complete header text for the given image bytes.
// basename is only used for the source annotation comment.
func RenderHeader(data []byte, basename string, opts Options) (string, error) {
	opts = opts.withDefaults()

	tmpl, err := template.New("header").Parse(HeaderTemplate)
	if err != nil {
		return "", fmt.Errorf("error parsing header template: %w", err)
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, templateData{
		GuardName: opts.GuardName,
		ArrayName: opts.ArrayName,
		SizeName:  opts.SizeName,
		Basename:  basename,
		Size:      len(data),
		Payload:   FormatPayload(data, opts.BytesPerRow),
	})
	if err != nil {
		return "", fmt.Errorf("error executing header template: %w", err)
	}
	return output.String(), nil
}

// Convert reads the image at inputPath and writes the embedding header to
// outputPath with the default splash screen identifiers.
func Convert(inputPath, outputPath string) error {
	return ConvertWithOptions(inputPath, outputPath, Options{})
}

// ConvertWithOptions performs the full read -> format -> write pass. Any
// existing file at outputPath is overwritten. The write is not atomic; a
// post-write round-trip check catches torn or mangled output instead.
func ConvertWithOptions(inputPath, outputPath string, opts Options) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}

	data, err := ioutil.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("error reading image file %s: %w", inputPath, err)
	}

	header, err := RenderHeader(data, filepath.Base(inputPath), opts)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(outputPath, []byte(header), 0644); err != nil {
		return fmt.Errorf("error writing header file %s: %w", outputPath, err)
	}
	log.Printf("Successfully generated %s", outputPath)
	log.Printf("Image size: %d bytes", len(data))

	if err := VerifyHeader(outputPath, data); err != nil {
		return fmt.Errorf("round-trip verification of %s failed: %w", outputPath, err)
	}
	return nil
}
