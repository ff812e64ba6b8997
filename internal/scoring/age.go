package scoring

// Age bounds covered by the score tables.
const (
	MinAge = 18
	MaxAge = 45
)

// ageBreakpoints holds the oldest age of groups 1 through 8; older ages up
// to MaxAge fall into group 9.
var ageBreakpoints = [...]int{21, 24, 27, 30, 33, 36, 39, 42}

// AgeGroup maps an age onto the table index 1..9. Ages outside
// [MinAge, MaxAge] return -1.
func AgeGroup(age int) int {
	if age < MinAge || age > MaxAge {
		return -1
	}
	for i, upper := range ageBreakpoints {
		if age <= upper {
			return i + 1
		}
	}
	return len(ageBreakpoints) + 1
}
