package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: ""},
		{name: "plain text", body: " upstream timeout \n", want: "upstream timeout"},
		{name: "string detail", body: `{"detail":"Session not found"}`, want: "Session not found"},
		{name: "list detail kept raw", body: `{"detail":[{"msg":"field required"}]}`, want: `{"detail":[{"msg":"field required"}]}`},
		{name: "json without detail", body: `{"error":"boom"}`, want: `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body)))
		})
	}
}
