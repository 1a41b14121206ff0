package questions

// Question is static reference data: a prompt tagged with a skill and the
// comma-separated keywords a satisfactory answer is expected to contain.
type Question struct {
	ID               int64
	Skill            string
	Text             string
	ExpectedKeywords string
}
