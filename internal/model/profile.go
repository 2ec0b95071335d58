package model

// Profile captures what the routine onboarding flow learned about a user.
type Profile struct {
	Habits     []string // current morning habits
	Activities []string // activities that energize the user
	Goals      []string // what the routine should achieve
}

// Complete reports whether every onboarding answer has been collected.
func (p *Profile) Complete() bool {
	return p != nil && len(p.Habits) > 0 && len(p.Activities) > 0 && len(p.Goals) > 0
}
