package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/duofin/internal/model"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML household questionnaire. Unknown fields are
// rejected so typos in field names surface as errors.
func Decode(r io.Reader) (model.Household, error) {
	var h model.Household
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&h); err != nil {
		if errors.Is(err, io.EOF) {
			return h, nil
		}
		return h, fmt.Errorf("parsing household: %w", err)
	}
	normalizeTypes(&h)
	return h, nil
}

// LoadFile reads and validates a household questionnaire file.
func LoadFile(path string, now time.Time) (model.Household, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return model.Household{}, fmt.Errorf("reading %s: %w", path, err)
	}

	h, err := Decode(bytes.NewReader(data))
	if err != nil {
		return h, fmt.Errorf("%s: %w", path, err)
	}
	if err := ValidateImport(h, now); err != nil {
		return h, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Encode writes h as YAML.
func Encode(w io.Writer, h model.Household) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("encoding household: %w", err)
	}
	return enc.Close()
}

// normalizeTypes lower-cases account types so "Savings" and "savings" match.
func normalizeTypes(h *model.Household) {
	for _, s := range model.Scopes {
		f := h.Scope(s)
		for i, a := range f.Accounts {
			if t, ok := model.ParseAccountType(string(a.Type)); ok {
				f.Accounts[i].Type = t
			}
		}
		h.SetScope(s, f)
	}
}
