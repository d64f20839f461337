// Package serializers maps models to their wire representation and decodes,
// validates and applies request bodies. Foreign keys are accepted as plain
// ids (guest_id) and returned as embedded read-only objects (guest).
package serializers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

var validate = validator.New()

// FieldErrors maps a field name to a human-readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Decode reads a JSON body into v. An empty body decodes as {}.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// presence says how a field may appear in a body.
type presence int

const (
	optional presence = iota
	// notBlank fields may be omitted but never sent blank.
	notBlank
	required
)

// presenceFor is required on create and notBlank on PATCH.
func presenceFor(partial bool) presence {
	if partial {
		return notBlank
	}
	return required
}

// checkString validates a string field; rules use validator tags.
func checkString(errs FieldErrors, field string, value *string, p presence, rules, msg string) {
	if value == nil {
		if p == required {
			errs[field] = msgRequired
		}
		return
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		if p != optional {
			errs[field] = msgBlank
		}
		return
	}
	if rules == "" {
		return
	}
	if err := validate.Var(v, rules); err != nil {
		errs[field] = msg
	}
}

func parseUUIDField(errs FieldErrors, field string, value *string, p presence) (uuid.UUID, bool) {
	if value == nil {
		if p == required {
			errs[field] = msgRequired
		}
		return uuid.Nil, false
	}
	if strings.TrimSpace(*value) == "" {
		switch p {
		case required:
			errs[field] = msgRequired
		case notBlank:
			errs[field] = msgBlank
		}
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		errs[field] = "Must be a valid UUID."
		return uuid.Nil, false
	}
	return id, true
}

// NullString tells an absent key from an explicit null.
type NullString struct {
	Set   bool
	Value *string
}

// NewNullString wraps a form value; nil means the key was absent.
func NewNullString(v *string) NullString {
	return NullString{Set: v != nil, Value: v}
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// nullable trims s and maps an empty result to nil.
func nullable(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func maxLen(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}
