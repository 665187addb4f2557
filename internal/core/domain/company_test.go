package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberRole_Allows(t *testing.T) {
	tests := []struct {
		role     MemberRole
		required MemberRole
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleReadOnly, true},
		{RoleMember, RoleMember, true},
		{RoleMember, RoleAdmin, false},
		{RoleReadOnly, RoleReadOnly, true},
		{RoleReadOnly, RoleMember, false},
		{MemberRole("REMOVED"), RoleReadOnly, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Allows(tt.required))
		})
	}
}
