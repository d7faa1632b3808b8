package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a remote identifier. The remote service sends numeric ids on some endpoints and
// string ids on others, both decode to the same value.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}

		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}

	*id = ID(n.String())

	return nil
}

func (id ID) String() string {
	return string(id)
}

// IDs converts a list of ids to strings.
func IDs(ids []ID) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = id.String()
	}

	return res
}
