package mocks

import (
	"context"
	"encoding/json"
	"seatpos/infras/backend"
)

// Respond returns a Do implementation that decodes body into the request's Result the same
// way the real client does, for use with DoAndReturn.
func Respond(body string) func(ctx context.Context, req backend.Request) (*backend.Response, error) {
	return func(_ context.Context, req backend.Request) (*backend.Response, error) {
		if req.Result != nil && body != "" {
			decode := json.Unmarshal
			if req.List {
				decode = backend.Unwrap
			}

			if err := decode([]byte(body), req.Result); err != nil {
				return nil, err //nolint:wrapcheck
			}
		}

		return &backend.Response{Status: 200}, nil
	}
}
