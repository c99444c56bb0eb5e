package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreatePaperRequest {
	return CreatePaperRequest{
		Title:      "Data Structures Mid-Sem 2024",
		Subject:    "Data Structures",
		Department: "CSE",
		Year:       "Second Year",
		Semester:   "Semester 3",
		ExamType:   "Mid-Semester",
	}
}

func TestCreatePaperRequestValidate(t *testing.T) {
	r := validCreateRequest()
	assert.Nil(t, r.Validate())

	r = validCreateRequest()
	r.Title = "   "
	errs := r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "title")

	r = validCreateRequest()
	r.Year = "Fifth Year"
	errs = r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "year")

	r = validCreateRequest()
	r.Semester = "Semester 9"
	errs = r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "semester")

	r = validCreateRequest()
	r.ExamType = "Viva"
	errs = r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "examType")
}

func TestUpdatePaperRequestValidate(t *testing.T) {
	empty := UpdatePaperRequest{}
	assert.Nil(t, empty.Validate())

	bad := "Fifth Year"
	r := UpdatePaperRequest{Year: &bad}
	errs := r.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "year")

	good := "Third Year"
	r = UpdatePaperRequest{Year: &good}
	assert.Nil(t, r.Validate())
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags("   "))
	assert.Equal(t, []string{"trees", "graphs"}, ParseTags("trees,graphs"))
	assert.Equal(t, []string{"trees", "graphs"}, ParseTags(" trees , , graphs ,"))
}
