package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1 << 20

type LineReader struct {
	reader io.Reader
}

func NewLineReader(reader io.Reader) *LineReader {
	return &LineReader{
		reader: reader,
	}
}

// Read returns every line with surrounding whitespace trimmed.
// A trailing newline does not produce an extra empty line.
func (lr *LineReader) Read() ([]string, error) {
	scanner := bufio.NewScanner(lr.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}

// FileReader reads the lines of an opened file.
type FileReader struct {
	*LineReader
	file *os.File
}

// OpenFile opens path for reading; the caller must Close the reader.
func OpenFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return &FileReader{LineReader: NewLineReader(f), file: f}, nil
}

func (fr *FileReader) Close() error {
	return fr.file.Close()
}
