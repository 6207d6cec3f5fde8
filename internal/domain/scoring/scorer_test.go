package scoring

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_PartialSkillMatch(t *testing.T) {
	p := &Profile{Skills: "React, TypeScript"}
	j := Job{Description: "We use react on the frontend"}

	res := NewHeuristic().Score(p, nil, j)

	if !almostEqual(res.Score, 0.5+0.2*0.5) {
		t.Fatalf("expected 0.6, got %v", res.Score)
	}
	if len(res.Reasons) != 1 {
		t.Fatalf("expected 1 reason, got %v", res.Reasons)
	}
	if res.Reasons[0] != "Skills match: React" {
		t.Fatalf("unexpected reason %q", res.Reasons[0])
	}
	if strings.Contains(res.Reasons[0], "TypeScript") {
		t.Fatalf("unmatched skill listed in reason")
	}
}

func TestScore_LocationCaseInsensitive(t *testing.T) {
	p := &Profile{Location: "Hanoi"}
	j := Job{Location: "hanoi"}

	res := NewHeuristic().Score(p, nil, j)

	if !almostEqual(res.Score, 0.65) {
		t.Fatalf("expected 0.65, got %v", res.Score)
	}
	if len(res.Reasons) != 1 || res.Reasons[0] != "Location match" {
		t.Fatalf("unexpected reasons %v", res.Reasons)
	}
}

func TestScore_ExperienceLevel(t *testing.T) {
	cases := []struct {
		name       string
		experience string
		reqs       string
		want       float64
	}{
		{"senior both", "Senior backend engineer", "Looking for a senior dev", 0.6},
		{"junior both", "junior developer", "junior role", 0.6},
		{"mismatch", "senior", "junior only", 0.5},
		{"empty requirements", "senior", "", 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := NewHeuristic().Score(&Profile{Experience: tc.experience}, nil, Job{Requirements: tc.reqs})
			if !almostEqual(res.Score, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, res.Score)
			}
		})
	}
}

func TestScore_PopularityCutoff(t *testing.T) {
	popular := NewHeuristic().Score(nil, nil, Job{Views: 100, Applications: 15})
	if !almostEqual(popular.Score, 0.55) {
		t.Fatalf("expected popularity bonus, got %v", popular.Score)
	}

	quiet := NewHeuristic().Score(nil, nil, Job{Views: 100, Applications: 5})
	if !almostEqual(quiet.Score, 0.5) {
		t.Fatalf("expected no popularity bonus, got %v", quiet.Score)
	}

	noViews := NewHeuristic().Score(nil, nil, Job{Views: 0, Applications: 10})
	if !almostEqual(noViews.Score, 0.5) {
		t.Fatalf("views=0 must not divide, got %v", noViews.Score)
	}
}

func TestScore_NoProfileNoAlerts(t *testing.T) {
	j := Job{CompanyVerified: true, Views: 100, Applications: 20}
	res := NewHeuristic().Score(nil, nil, j)

	if !almostEqual(res.Score, 0.6) {
		t.Fatalf("expected base + verified + popular, got %v", res.Score)
	}
	if len(res.Reasons) != 2 || res.Reasons[0] != "Verified company" || res.Reasons[1] != "Popular job" {
		t.Fatalf("unexpected reasons %v", res.Reasons)
	}
}

func TestScore_AlertBonusOnce(t *testing.T) {
	alerts := []Alert{
		{Keywords: "golang"},
		{Location: "Hanoi"},
	}
	j := Job{Title: "Golang Engineer", Location: "Hanoi, Vietnam"}

	res := NewHeuristic().Score(nil, alerts, j)

	// Both alerts match but the bonus applies once.
	if !almostEqual(res.Score, 0.7) {
		t.Fatalf("expected 0.7, got %v", res.Score)
	}
}

func TestScore_ClampUpperBound(t *testing.T) {
	p := &Profile{
		Skills:     "go",
		Location:   "Hanoi",
		Experience: "senior",
	}
	alerts := []Alert{{Keywords: "go"}}
	j := Job{
		Title:           "Senior Go Engineer",
		Description:     "go everywhere",
		Requirements:    "senior",
		Location:        "Hanoi",
		CompanyVerified: true,
		Views:           10,
		Applications:    5,
	}

	res := NewHeuristic().Score(p, alerts, j)

	if res.Score < 0 || res.Score > 1 {
		t.Fatalf("score out of range: %v", res.Score)
	}
	if !almostEqual(res.Score, 1.0) {
		t.Fatalf("expected clamp to 1.0, got %v", res.Score)
	}
}

func TestScore_ReasonOrderFollowsEvaluation(t *testing.T) {
	p := &Profile{Skills: "go", Location: "Hanoi"}
	j := Job{
		Description:     "go shop",
		Location:        "Hanoi",
		CompanyVerified: true,
	}

	res := NewHeuristic().Score(p, nil, j)

	want := []string{"Skills match: go", "Location match", "Verified company"}
	if len(res.Reasons) != len(want) {
		t.Fatalf("expected %d reasons, got %v", len(want), res.Reasons)
	}
	for i := range want {
		if res.Reasons[i] != want[i] {
			t.Fatalf("reason %d: expected %q, got %q", i, want[i], res.Reasons[i])
		}
	}
}

func TestMatchesAlert(t *testing.T) {
	j := Job{
		Title:       "Backend Engineer",
		Description: "Building APIs in Go",
		Location:    "Ho Chi Minh City",
		Type:        "FULL_TIME",
	}

	cases := []struct {
		name  string
		alert Alert
		want  bool
	}{
		{"empty alert matches everything", Alert{}, true},
		{"keyword in title", Alert{Keywords: "backend"}, true},
		{"keyword in description", Alert{Keywords: "apis"}, true},
		{"keyword absent", Alert{Keywords: "rust"}, false},
		{"location substring", Alert{Location: "chi minh"}, true},
		{"location absent", Alert{Location: "Hanoi"}, false},
		{"type exact", Alert{Type: "FULL_TIME"}, true},
		{"type mismatch", Alert{Type: "PART_TIME"}, false},
		{"all conditions must hold", Alert{Keywords: "backend", Location: "Hanoi"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesAlert(tc.alert, j); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScore_SkipsEmptySkillTokens(t *testing.T) {
	p := &Profile{Skills: "go,, ,sql"}
	j := Job{Description: "go and sql all day"}

	res := NewHeuristic().Score(p, nil, j)

	// Two real tokens, both matched: full skill weight.
	if !almostEqual(res.Score, 0.7) {
		t.Fatalf("expected 0.7, got %v", res.Score)
	}
}
