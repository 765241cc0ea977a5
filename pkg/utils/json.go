// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON reads a JSON file and unmarshals it into the provided interface.
// Errors from opening the file are returned unwrapped so callers can test them
// with errors.Is(err, fs.ErrNotExist).
func ReadJSON(path string, v interface{}) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(contentBytes, v); err != nil {
		return &JSONError{Path: path, Err: err}
	}

	return nil
}

// JSONError reports a file that exists but could not be decoded
type JSONError struct {
	Path string
	Err  error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("failed to unmarshal JSON from %s: %s", e.Path, e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}
