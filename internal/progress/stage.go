package progress

// Stage is one of the four fixed learning stages of a lesson attempt.
type Stage int

const (
	StageReading Stage = iota
	StageComprehension
	StageExercises
	StageSummary
)

// stageOrder is the fixed linear progression through a lesson.
var stageOrder = []Stage{StageReading, StageComprehension, StageExercises, StageSummary}

func (s Stage) String() string {
	switch s {
	case StageReading:
		return "reading"
	case StageComprehension:
		return "comprehension"
	case StageExercises:
		return "exercises"
	case StageSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Next returns the stage that follows s, or s itself when s is the last
// stage (advancing past Summary is a no-op; submission takes over there).
func (s Stage) Next() Stage {
	for i, st := range stageOrder {
		if st == s && i+1 < len(stageOrder) {
			return stageOrder[i+1]
		}
	}
	return s
}
