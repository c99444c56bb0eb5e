package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pyqbank_backend/internals/constants"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus("archived"))
}

func TestCanDelete(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	f := &FeedbackModel{UserID: owner}

	assert.True(t, f.CanDelete(owner, constants.RoleUser))
	assert.True(t, f.CanDelete(stranger, constants.RoleAdmin))
	assert.False(t, f.CanDelete(stranger, constants.RoleUser))
	assert.False(t, f.CanDelete(uuid.Nil, ""))
}
