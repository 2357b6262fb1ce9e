package models

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

type LearningPreference string

const (
	PreferVisual   LearningPreference = "visual"
	PreferHandsOn  LearningPreference = "hands_on"
	PreferReading  LearningPreference = "reading"
	PreferAuditory LearningPreference = "auditory"
)

func (p LearningPreference) Valid() bool {
	switch p {
	case PreferVisual, PreferHandsOn, PreferReading, PreferAuditory:
		return true
	}
	return false
}
