package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	testImageWidth  = 4 // Keep it small for testing
	testImageHeight = 4
)

// Helper function to handle writing and potential errors
func writeBinary(f *os.File, data interface{}) error {
	return binary.Write(f, binary.LittleEndian, data)
}

// generateTestSplashBMP writes a small 24-bit BMP used as conversion input
// by the end-to-end test.
func generateTestSplashBMP(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	const fileHeaderSize = 14
	const dibHeaderSize = 40
	const bytesPerPixel = 3 // 24-bit color
	bytesPerRow := testImageWidth * bytesPerPixel
	paddingPerRow := (4 - (bytesPerRow % 4)) % 4 // Standard BMP padding logic
	imageDataSize := uint32(testImageHeight * (bytesPerRow + paddingPerRow))
	fileSize := uint32(fileHeaderSize + dibHeaderSize + imageDataSize)
	dataOffset := uint32(fileHeaderSize + dibHeaderSize)

	// BMP File Header
	if _, err = f.WriteString("BM"); err != nil {
		return fmt.Errorf("WriteString failed for signature: %w", err)
	}
	for _, v := range []interface{}{
		fileSize, uint16(0), uint16(0), dataOffset,
		// DIB Header (BITMAPINFOHEADER)
		uint32(dibHeaderSize), int32(testImageWidth), int32(testImageHeight),
		uint16(1), uint16(24), uint32(0), imageDataSize,
		int32(2835), int32(2835), uint32(0), uint32(0),
	} {
		if err = writeBinary(f, v); err != nil {
			return fmt.Errorf("binary.Write failed: %w", err)
		}
	}

	// Pixel data (BGR order) with row padding
	row := make([]byte, bytesPerRow+paddingPerRow)
	for y := 0; y < testImageHeight; y++ {
		for x := 0; x < testImageWidth; x++ {
			row[x*3+0] = byte(16 * x)       // Blue
			row[x*3+1] = byte(16 * y)       // Green
			row[x*3+2] = byte(16 * (x + y)) // Red
		}
		if _, err = f.Write(row); err != nil {
			return fmt.Errorf("failed writing pixel row %d: %w", y, err)
		}
	}

	return nil
}
