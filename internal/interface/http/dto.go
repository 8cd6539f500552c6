package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthDate parses birth_date as RFC3339 or a bare date ("2006-01-02").
// A bare date is stored as midnight UTC. null or "" leave it unset.
type BirthDate struct{ t time.Time }

func (d *BirthDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = time.Time{}
		return nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			d.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("birth_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Time returns the zero time when the field was omitted.
func (d BirthDate) Time() time.Time { return d.t }

// flexString accepts a JSON string, number or boolean and keeps its text.
// null leaves it empty; objects and arrays are rejected.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*s = flexString(data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a string, got %s", data)
		}
		*s = flexString(n.String())
	}
	return nil
}

// flexFloat accepts a number, a numeric string or a boolean (1/0).
// null and "" leave it unset.
type flexFloat struct{ p *float64 }

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	f.p = nil
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var v float64
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("point: %q is not a number", s)
		}
		v = parsed
	case bytes.Equal(data, []byte("true")):
		v = 1
	case bytes.Equal(data, []byte("false")):
		v = 0
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
	}
	f.p = &v
	return nil
}

func (f flexFloat) Ptr() *float64 { return f.p }

// flexStrings accepts a list of scalars or a single scalar, which becomes a one-item list.
type flexStrings []string

func (l *flexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []flexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = string(it)
		}
		*l = out
		return nil
	}
	var one flexString
	if err := one.UnmarshalJSON(data); err != nil {
		return err
	}
	*l = []string{string(one)}
	return nil
}

// Username and Password are pointers so that "required" checks presence, not emptiness.
type registerRequest struct {
	Username    *string   `json:"username" binding:"required"`
	Password    *string   `json:"password" binding:"required"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	BirthDate   BirthDate `json:"birth_date"`
	PhoneNumber string    `json:"phone_number"`
	Gender      string    `json:"gender"`
}

type loginRequest struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type submitParagraphRequest struct {
	Content  flexString  `json:"content"`
	Point    flexFloat   `json:"point"`
	Mistakes flexStrings `json:"mistakes"`
	Suggest  flexString  `json:"suggest"`
	UserID   flexString  `json:"userId"`
}
