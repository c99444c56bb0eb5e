package dto

import (
	"strings"

	"pyqbank_backend/internals/constants"
)

type CreateSubjectRequest struct {
	Name     string `json:"name" form:"name"`
	Year     string `json:"year" form:"year"`
	Semester string `json:"semester" form:"semester"`
}

func (r *CreateSubjectRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = append(errs["name"], "required")
	}
	if !constants.IsValidYear(r.Year) {
		errs["year"] = append(errs["year"], "must be one of: "+strings.Join(constants.Years, ", "))
	}
	if !constants.IsValidSemester(r.Semester) {
		errs["semester"] = append(errs["semester"], "must be one of: "+strings.Join(constants.Semesters, ", "))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
