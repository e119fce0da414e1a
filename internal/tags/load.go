package tags

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/job-compare/internal/types"
)

// Load reads a tag registry from path.
//
// Files ending in .yml or .yaml hold a list of {id, name} objects. Any other
// file is read as a numbered list ("7. Computer Programming"), one tag per
// line; lines that do not match are ignored. An empty path or a missing file
// falls back to the built-in list.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[tags] %s not found, using built-in tag list", path)
			return Default(), nil
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var list []types.Tag
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
		}
	default:
		list, err = ParseNumberedList(bytes.NewReader(data))
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse tag list", Cause: err}
		}
	}

	if len(list) == 0 {
		return nil, &LoadError{Path: path, Message: "no tags found"}
	}

	reg, err := New(list)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid tag list", Cause: err}
	}
	return reg, nil
}

// ParseNumberedList parses lines of the form "N. Name".
func ParseNumberedList(r io.Reader) ([]types.Tag, error) {
	var list []types.Tag
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		num, name, ok := strings.Cut(line, ". ")
		if !ok {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		list = append(list, types.Tag{ID: id, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
