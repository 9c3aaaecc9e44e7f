package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationContextString(t *testing.T) {
	tests := []struct {
		name string
		ctx  OperationContext
		want string
	}{
		{"empty", OperationContext{}, ""},
		{"operation id wins", OperationContext{Method: "GET", Path: "/pets", OperationID: "listPets"}, "(operationId: listPets)"},
		{"method and path", OperationContext{Method: "POST", Path: "/pets"}, "(POST /pets)"},
		{"path only", OperationContext{Path: "/pets"}, "(path: /pets)"},
		{"unused component", OperationContext{IsReusableComponent: true, AdditionalRefs: -1}, "(unused component)"},
		{
			"shared component",
			OperationContext{Method: "GET", Path: "/pets", OperationID: "listPets", IsReusableComponent: true, AdditionalRefs: 3},
			"(operationId: listPets, +3 operations)",
		},
		{
			"component used once",
			OperationContext{Method: "GET", Path: "/pets", IsReusableComponent: true},
			"(GET /pets)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.String())
		})
	}
}

func TestOperationContextIsEmpty(t *testing.T) {
	assert.True(t, OperationContext{}.IsEmpty())
	assert.False(t, OperationContext{Path: "/pets"}.IsEmpty())
	assert.False(t, OperationContext{IsReusableComponent: true}.IsEmpty())
}
