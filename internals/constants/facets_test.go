package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacetValidators(t *testing.T) {
	assert.True(t, IsValidYear("First Year"))
	assert.False(t, IsValidYear("first year"))
	assert.False(t, IsValidYear(""))

	assert.True(t, IsValidSemester("Semester 8"))
	assert.False(t, IsValidSemester("Semester 9"))

	assert.True(t, IsValidExamType("End-Semester"))
	assert.False(t, IsValidExamType("Final"))
}

func TestRoleValidators(t *testing.T) {
	assert.True(t, IsValidRole(RoleUser))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("moderator"))
	assert.False(t, IsValidRole(""))
}
