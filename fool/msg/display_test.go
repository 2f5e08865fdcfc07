package msg_test

import (
	"testing"

	"github.com/ratel-online/fool/fool/msg"
	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "spaces", input: "10h  js", want: []string{"10H", "JS"}},
		{name: "commas", input: "6c,7c, 8c", want: []string{"6C", "7C", "8C"}},
		{name: "pass", input: " pass ", want: []string{"PASS"}},
		{name: "empty", input: "   ", want: []string{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, msg.Fields(test.input))
		})
	}
}
