package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedbackValidate(t *testing.T) {
	r := CreateFeedbackRequest{Rating: 4, Message: "Very helpful paper"}
	assert.Nil(t, r.Validate())

	for _, rating := range []int{0, -1, 6} {
		r := CreateFeedbackRequest{Rating: rating, Message: "ok"}
		errs := r.Validate()
		require.NotNil(t, errs, "rating %d must be rejected", rating)
		assert.Contains(t, errs, "rating")
	}
	for _, rating := range []int{1, 5} {
		r := CreateFeedbackRequest{Rating: rating, Message: "ok"}
		assert.Nil(t, r.Validate(), "rating %d must be accepted", rating)
	}

	r = CreateFeedbackRequest{Rating: 3, Message: "   "}
	errs := r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "message")

	r = CreateFeedbackRequest{Rating: 3, Message: strings.Repeat("x", 1001)}
	errs = r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "message")
}

func TestUpdateFeedbackValidate(t *testing.T) {
	empty := UpdateFeedbackRequest{}
	assert.Nil(t, empty.Validate())

	good := "approved"
	r := UpdateFeedbackRequest{Status: &good}
	assert.Nil(t, r.Validate())

	bad := "shipped"
	r = UpdateFeedbackRequest{Status: &bad}
	errs := r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "status")
}
