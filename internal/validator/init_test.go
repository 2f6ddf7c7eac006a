package validator

import (
	"ctchen222/solo-tic-tac-toe/pkg/proto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientMessageValidation(t *testing.T) {
	yes := true

	tests := []struct {
		name    string
		msg     proto.ClientMessage
		wantErr bool
	}{
		{"start", proto.ClientMessage{Type: proto.TypeStart}, false},
		{"move", proto.ClientMessage{Type: proto.TypeMove, Position: []int{2, 0}}, false},
		{"smart", proto.ClientMessage{Type: proto.TypeSmart, Enabled: &yes}, false},
		{"toggle", proto.ClientMessage{Type: proto.TypeToggleSmart}, false},
		{"missing type", proto.ClientMessage{}, true},
		{"unknown type", proto.ClientMessage{Type: "rematch"}, true},
		{"row out of range", proto.ClientMessage{Type: proto.TypeMove, Position: []int{3, 0}}, true},
		{"negative col", proto.ClientMessage{Type: proto.TypeMove, Position: []int{0, -1}}, true},
		{"three numbers", proto.ClientMessage{Type: proto.TypeMove, Position: []int{0, 1, 2}}, true},
		{"smart without value", proto.ClientMessage{Type: proto.TypeSmart}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.msg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
