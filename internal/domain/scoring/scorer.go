package scoring

import "strings"

const baseScore = 0.5

const (
	skillWeight      = 0.2
	locationBonus    = 0.15
	experienceBonus  = 0.1
	alertBonus       = 0.2
	verifiedBonus    = 0.05
	popularityBonus  = 0.05
	popularityCutoff = 0.1
)

type Profile struct {
	Skills     string
	Location   string
	Experience string
}

type Alert struct {
	Keywords string
	Location string
	Type     string
}

type Job struct {
	Title           string
	Description     string
	Requirements    string
	Location        string
	Type            string
	CompanyVerified bool
	Applications    int
	Views           int
}

type Result struct {
	Score   float64
	Reasons []string
}

// Scorer computes a match score in [0,1] for one user/job pair. The heuristic
// string matching lives behind this interface so a structured skill model can
// replace it without touching callers.
type Scorer interface {
	Score(profile *Profile, alerts []Alert, j Job) Result
}

type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

// Score starts every job at 0.5 and applies bonuses in a fixed order; the
// reasons slice mirrors that order.
func (Heuristic) Score(profile *Profile, alerts []Alert, j Job) Result {
	score := baseScore
	reasons := make([]string, 0, 6)

	if profile != nil {
		if profile.Skills != "" && j.Description != "" {
			matched, total := matchSkills(profile.Skills, j.Description)
			if len(matched) > 0 {
				score += skillWeight * (float64(len(matched)) / float64(total))
				reasons = append(reasons, "Skills match: "+strings.Join(matched, ", "))
			}
		}

		if profile.Location != "" && j.Location != "" &&
			strings.EqualFold(profile.Location, j.Location) {
			score += locationBonus
			reasons = append(reasons, "Location match")
		}

		if profile.Experience != "" && j.Requirements != "" {
			exp := strings.ToLower(profile.Experience)
			reqs := strings.ToLower(j.Requirements)
			if (strings.Contains(exp, "senior") && strings.Contains(reqs, "senior")) ||
				(strings.Contains(exp, "junior") && strings.Contains(reqs, "junior")) {
				score += experienceBonus
				reasons = append(reasons, "Experience level match")
			}
		}
	}

	if anyAlertMatches(alerts, j) {
		score += alertBonus
		reasons = append(reasons, "Matches your job alerts")
	}

	if j.CompanyVerified {
		score += verifiedBonus
		reasons = append(reasons, "Verified company")
	}

	if j.Views > 0 {
		popularity := float64(j.Applications) / float64(j.Views)
		if popularity > popularityCutoff {
			score += popularityBonus
			reasons = append(reasons, "Popular job")
		}
	}

	return Result{Score: clamp(score), Reasons: reasons}
}

// matchSkills splits the comma-separated skills string and reports which
// entries appear as substrings of the job description. Matching is
// case-insensitive but the returned names keep the profile's casing.
func matchSkills(skills, description string) (matched []string, total int) {
	desc := strings.ToLower(description)
	for _, raw := range strings.Split(skills, ",") {
		skill := strings.TrimSpace(raw)
		if skill == "" {
			continue
		}
		total++
		if strings.Contains(desc, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched, total
}

func anyAlertMatches(alerts []Alert, j Job) bool {
	for _, a := range alerts {
		if MatchesAlert(a, j) {
			return true
		}
	}
	return false
}

// MatchesAlert applies one saved search to a job. Every present condition
// must hold; absent conditions are wildcards. The same predicate backs the
// candidate pre-filter and the alert score bonus.
func MatchesAlert(a Alert, j Job) bool {
	if a.Keywords != "" {
		kw := strings.ToLower(a.Keywords)
		if !strings.Contains(strings.ToLower(j.Title), kw) &&
			!strings.Contains(strings.ToLower(j.Description), kw) {
			return false
		}
	}
	if a.Location != "" {
		if !strings.Contains(strings.ToLower(j.Location), strings.ToLower(a.Location)) {
			return false
		}
	}
	if a.Type != "" && a.Type != j.Type {
		return false
	}
	return true
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
