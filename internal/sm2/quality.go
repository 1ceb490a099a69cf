package sm2

import "fmt"

// Quality is the learner's recall quality on the SM-2 scale of 0-5.
// Anything below QualityCorrectDifficult counts as forgotten.
type Quality int

const (
	// QualityBlackout: complete blackout, unable to recall.
	QualityBlackout Quality = 0
	// QualityIncorrect: incorrect, but remembered upon seeing the answer.
	QualityIncorrect Quality = 1
	// QualityIncorrectFamiliar: incorrect, but the answer felt familiar.
	QualityIncorrectFamiliar Quality = 2
	// QualityCorrectDifficult: correct, but required significant effort.
	QualityCorrectDifficult Quality = 3
	// QualityCorrectHesitation: correct after some hesitation.
	QualityCorrectHesitation Quality = 4
	// QualityPerfect: perfect recall with no hesitation.
	QualityPerfect Quality = 5
)

// PassThreshold is the lowest quality that counts as a successful recall.
const PassThreshold = QualityCorrectDifficult

// IsValid reports whether q is on the 0-5 scale.
func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Passed reports whether q counts as a successful recall.
func (q Quality) Passed() bool {
	return q >= PassThreshold
}

// String returns the quality as its numeric rating, e.g. "Quality(4)".
func (q Quality) String() string {
	return fmt.Sprintf("Quality(%d)", int(q))
}
