package fsutils

import (
	"io"
	"log"
	"os"
)

// ReadFileData reads up to max bytes from the file at filePath.
// max == 0 reads the whole file, max > 0 reads the first max bytes,
// max < 0 reads the last |max| bytes.
func ReadFileData(filePath string, max int) ([]byte, error) {
	if max == 0 {
		return os.ReadFile(filePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	n := int64(max)
	if n < 0 {
		n = -n
	}
	if n > size {
		n = size
	}
	if max < 0 {
		if _, err = file.Seek(size-n, io.SeekStart); err != nil {
			return nil, err
		}
	}
	data := make([]byte, n)
	if _, err = io.ReadFull(file, data); err != nil {
		return nil, err
	}
	return data, nil
}
