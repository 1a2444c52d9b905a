package brep

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Save writes the solid as indented JSON.
func Save(w io.Writer, s *Solid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("brep: encode solid: %w", err)
	}
	return nil
}

// Load reads a solid written by Save and validates it.
func Load(r io.Reader) (*Solid, error) {
	var s Solid
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("brep: decode solid: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveFile writes the solid to path, creating or truncating the file.
func SaveFile(path string, s *Solid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("brep: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("brep: %w", cerr)
		}
	}()
	return Save(f, s)
}

// LoadFile reads a solid from path.
func LoadFile(path string) (*Solid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("brep: %w", err)
	}
	defer f.Close()
	return Load(f)
}
