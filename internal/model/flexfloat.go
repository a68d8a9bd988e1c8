package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexFloat is a float64 that unmarshals from either a JSON number or
// a numeric string. Clients of the original service submitted the VAT
// percentage both ways, and hand-edited collection files do too.
type FlexFloat float64

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("unquote flex float: %w", err)
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse flex float %q: %w", s, err)
		}
		*f = FlexFloat(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse flex float %s: %w", data, err)
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler]. The value is
// always written back as a number, matching parseFloat coercion on
// the create path of the original service.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}
