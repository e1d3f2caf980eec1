package emitter

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"regexp"
	"strconv"
	"strings"
)

var (
	byteTokenPattern = regexp.MustCompile(`0x([0-9a-fA-F]{2})`)
	sizeConstPattern = regexp.MustCompile(`const unsigned int \w+ = (\d+);`)
)

// ParseHeader extracts the embedded payload bytes back out of a generated
// header by decoding every 0xNN token inside the array body. Headers written
// by older converters with a trailing comma parse the same way.
func ParseHeader(path string) ([]byte, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header file %s: %w", path, err)
	}
	text := string(content)

	open := strings.IndexByte(text, '{')
	closing := strings.IndexByte(text, '}')
	if open < 0 || closing < open {
		return nil, fmt.Errorf("header file %s has no array body", path)
	}

	matches := byteTokenPattern.FindAllStringSubmatch(text[open+1:closing], -1)
	data := make([]byte, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte literal '0x%s' in %s: %w", m[1], path, err)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

// ParseDeclaredSize returns the value of the size constant declared in a
// generated header.
func ParseDeclaredSize(path string) (int, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read header file %s: %w", path, err)
	}

	m := sizeConstPattern.FindStringSubmatch(string(content))
	if m == nil {
		return 0, fmt.Errorf("header file %s has no size constant", path)
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid size constant '%s' in %s: %w", m[1], path, err)
	}
	return size, nil
}

// VerifyHeader checks that a generated header round-trips: the decoded array
// payload must equal the source bytes and the declared size constant must
// equal their count.
func VerifyHeader(path string, want []byte) error {
	got, err := ParseHeader(path)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("payload mismatch: header %s decodes to %d byte(s), source has %d", path, len(got), len(want))
	}

	declared, err := ParseDeclaredSize(path)
	if err != nil {
		return err
	}
	if declared != len(want) {
		return fmt.Errorf("size constant mismatch in %s: declared %d, expected %d", path, declared, len(want))
	}
	return nil
}
