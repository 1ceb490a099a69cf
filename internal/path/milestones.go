package path

import "fmt"

// The four-stage milestone ladder. The stages are a fixed template
// parameterized only by the focus subject, not by the learner's pace.
var milestoneStages = []Milestone{
	{Name: "Foundation", TargetAccuracy: 65, EstimatedDays: 7, QuestionQuota: 50},
	{Name: "Skill Development", TargetAccuracy: 75, EstimatedDays: 14, QuestionQuota: 100},
	{Name: "Mastery", TargetAccuracy: 85, EstimatedDays: 21, QuestionQuota: 150},
	{Name: "Excellence", TargetAccuracy: 90, EstimatedDays: 30, QuestionQuota: 200},
}

// MilestoneLadder returns the four-stage ladder focused on the given
// subject, weakest-subject first.
func MilestoneLadder(subject string) []Milestone {
	ladder := make([]Milestone, len(milestoneStages))
	for i, stage := range milestoneStages {
		ladder[i] = stage
		ladder[i].Name = fmt.Sprintf("%s: %s", stage.Name, subject)
	}
	return ladder
}
