package restyutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatHeadersRedacts(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret-token")
	headers.Set("Content-Type", "application/json")
	headers.Add("Set-Cookie", "a=1")

	out := formatHeaders(headers)
	require.NotContains(t, out, "secret-token")
	require.NotContains(t, out, "a=1")
	require.Equal(t,
		"Authorization: <redacted>\nContent-Type: application/json\nSet-Cookie: <redacted>",
		out,
	)
}
