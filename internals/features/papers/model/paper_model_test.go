package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pyqbank_backend/internals/constants"
)

func TestVisibleTo(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	approved := &PaperModel{UploaderID: owner, Approved: true}
	pending := &PaperModel{UploaderID: owner, Approved: false}

	// Approved papers are visible to everyone, including anonymous callers.
	assert.True(t, approved.VisibleTo(uuid.Nil, ""))
	assert.True(t, approved.VisibleTo(stranger, constants.RoleUser))
	assert.True(t, approved.VisibleTo(owner, constants.RoleUser))

	// Pending papers are visible only to the uploader and admins.
	assert.False(t, pending.VisibleTo(uuid.Nil, ""))
	assert.False(t, pending.VisibleTo(stranger, constants.RoleUser))
	assert.True(t, pending.VisibleTo(owner, constants.RoleUser))
	assert.True(t, pending.VisibleTo(stranger, constants.RoleAdmin))
}

func TestVisibleToNilUploaderPending(t *testing.T) {
	// A pending paper whose uploader was deleted must not leak to anonymous
	// callers through the uuid.Nil == uuid.Nil comparison.
	pending := &PaperModel{UploaderID: uuid.Nil, Approved: false}
	assert.False(t, pending.VisibleTo(uuid.Nil, ""))
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	paper := &PaperModel{UploaderID: owner, Approved: true}

	assert.True(t, paper.CanModify(owner, constants.RoleUser))
	assert.True(t, paper.CanModify(stranger, constants.RoleAdmin))
	assert.False(t, paper.CanModify(stranger, constants.RoleUser))
	assert.False(t, paper.CanModify(uuid.Nil, ""))
}
