package constants

// Classification facets on papers and subjects. Values mirror the web
// client's dropdowns; validation rejects anything outside these sets.
var (
	Years = []string{
		"First Year",
		"Second Year",
		"Third Year",
		"Fourth Year",
	}

	Semesters = []string{
		"Semester 1",
		"Semester 2",
		"Semester 3",
		"Semester 4",
		"Semester 5",
		"Semester 6",
		"Semester 7",
		"Semester 8",
	}

	ExamTypes = []string{
		"Mid-Semester",
		"End-Semester",
		"Quiz",
		"Assignment",
	}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidYear(v string) bool     { return contains(Years, v) }
func IsValidSemester(v string) bool { return contains(Semesters, v) }
func IsValidExamType(v string) bool { return contains(ExamTypes, v) }
