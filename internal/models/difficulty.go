package models

// DifficultyLevel is one of four ordered skill tiers. The zero value is
// Beginner. Ordering follows the multiplier.
type DifficultyLevel int

const (
	Beginner DifficultyLevel = iota
	Intermediate
	Advanced
	Expert
)

var levelNames = [...]string{"beginner", "intermediate", "advanced", "expert"}

var levelMultipliers = [...]float64{1.0, 1.3, 1.6, 2.0}

var levelDescriptions = [...]string{
	"Common verbs in the present tense",
	"Regular verbs across the simple tenses",
	"Irregular verbs and the subjunctive",
	"Rare verbs and compound tenses",
}

func (l DifficultyLevel) String() string {
	if l < Beginner || l > Expert {
		return "unknown"
	}
	return levelNames[l]
}

// Multiplier returns the difficulty multiplier used to pick which cards a
// tier is offered.
func (l DifficultyLevel) Multiplier() float64 {
	if l < Beginner || l > Expert {
		return levelMultipliers[Beginner]
	}
	return levelMultipliers[l]
}

func (l DifficultyLevel) Description() string {
	if l < Beginner || l > Expert {
		return ""
	}
	return levelDescriptions[l]
}

// ClampLevel forces an index into the valid tier range.
func ClampLevel(i int) DifficultyLevel {
	if i < int(Beginner) {
		return Beginner
	}
	if i > int(Expert) {
		return Expert
	}
	return DifficultyLevel(i)
}
