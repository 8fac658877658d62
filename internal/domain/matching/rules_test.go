package matching

import (
	"fmt"
	"math"
	"testing"

	"placement-match/internal/domain/candidate"
)

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBoostScore_SkillRatio(t *testing.T) {
	p := candidate.Profile{Skills: []string{"python", "Java"}}
	got := BoostScore(p, []string{"Python", "SQL"})
	approx(t, got, 0.5*0.4)
}

func TestBoostScore_EducationFlatFirstMatchWins(t *testing.T) {
	p := candidate.Profile{
		Education: []candidate.Education{
			{Degree: "BSc", Field: "Computer Science"},
			{Degree: "MSc", Field: "Computer Science"},
		},
	}
	got := BoostScore(p, []string{"computer science"})
	approx(t, got, 0.3)
}

func TestBoostScore_EmptyEducationFieldsNeverMatch(t *testing.T) {
	p := candidate.Profile{
		Education: []candidate.Education{{Institution: "UI"}},
	}
	got := BoostScore(p, []string{"python"})
	approx(t, got, 0)
}

func TestBoostScore_ExperienceSaturatesAt24Months(t *testing.T) {
	p := candidate.Profile{
		Experience: []candidate.Experience{{DurationMonths: 30}},
	}
	approx(t, BoostScore(p, []string{"python"}), 0.3)

	p.Experience = []candidate.Experience{{DurationMonths: 12}}
	approx(t, BoostScore(p, []string{"python"}), 0.15)
}

func TestBoostScore_ClampedToOne(t *testing.T) {
	p := candidate.Profile{
		Skills: []string{"go"},
		Education: []candidate.Education{
			{Degree: "BSc", Field: "go"},
		},
		Experience: []candidate.Experience{{DurationMonths: 48}},
	}
	got := BoostScore(p, []string{"go"})
	if got > 1 {
		t.Fatalf("boost score above 1: %v", got)
	}
	approx(t, got, 1.0)
}

func TestDetailedScore_SkillsExactAndPartial(t *testing.T) {
	p := candidate.Profile{Skills: []string{"Python", "SQL", "MySQL"}}
	// exact: {python, sql} over 2 reqs -> 0.4
	// partial: python, sql, mysql all substring-match -> 3/2 * 0.1 = 0.15
	// completeness: skills present -> 0.01
	got := DetailedScore(p, []string{"python", "sql"})
	approx(t, got, 0.4+0.15+0.01)
}

func TestDetailedScore_ExperienceTiers(t *testing.T) {
	cases := []struct {
		months int
		want   float64
	}{
		{30, 0.15},
		{24, 0.15},
		{12, 0.10},
		{6, 0.05},
		{3, 0},
	}
	for _, tc := range cases {
		p := candidate.Profile{
			Experience: []candidate.Experience{
				{Description: "built web apps", DurationMonths: tc.months},
			},
		}
		got := DetailedScore(p, []string{"python"})
		approx(t, got, tc.want+0.01) // +0.01 completeness for experience
	}
}

func TestDetailedScore_ExperienceRelevanceCapped(t *testing.T) {
	exp := make([]candidate.Experience, 0, 6)
	for i := 0; i < 6; i++ {
		exp = append(exp, candidate.Experience{
			Description:    "wrote python services",
			DurationMonths: 6,
		})
	}
	p := candidate.Profile{Experience: exp}
	// 36 months -> 0.15 tier, plus 6 relevance bumps of 0.05, capped at 0.20.
	got := DetailedScore(p, []string{"python"})
	approx(t, got, 0.20+0.01)
}

func TestDetailedScore_EducationFirstEntryOnly(t *testing.T) {
	p := candidate.Profile{
		Education: []candidate.Education{
			{Degree: "Diploma", Field: "arts", GPA: 2.0},
			{Degree: "MSc", Field: "computer science", GPA: 4.0},
		},
	}
	// Only the first entry is scored: no field match, no GPA bonus.
	got := DetailedScore(p, []string{"computer science"})
	approx(t, got, 0.01)
}

func TestDetailedScore_EducationBonuses(t *testing.T) {
	p := candidate.Profile{
		Education: []candidate.Education{
			{Degree: "Master of Science", Field: "computer science", GPA: 3.7},
		},
	}
	// field match 0.15 + GPA>=3.5 0.05 + master 0.02 + completeness 0.01
	got := DetailedScore(p, []string{"computer science"})
	approx(t, got, 0.15+0.05+0.02+0.01)

	p.Education[0].GPA = 3.2
	got = DetailedScore(p, []string{"computer science"})
	approx(t, got, 0.15+0.03+0.02+0.01)
}

func TestDetailedScore_Completeness(t *testing.T) {
	p := candidate.Profile{
		Bio:        "hi",
		Skills:     []string{"knitting"},
		Interests:  []string{"music"},
		Education:  []candidate.Education{{Degree: "BSc"}},
		Experience: []candidate.Experience{{DurationMonths: 1}},
	}
	got := DetailedScore(p, []string{"python"})
	approx(t, got, 0.05)
}

func TestRuleScores_ExtremeInputsStayInRange(t *testing.T) {
	reqs := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		reqs = append(reqs, fmt.Sprintf("req-%d", i))
	}
	empty := candidate.Profile{}
	huge := candidate.Profile{
		Skills:     reqs,
		Education:  []candidate.Education{{Degree: "phd", Field: "req-1", GPA: 4.0}},
		Experience: []candidate.Experience{{Description: "req-2", DurationMonths: 1 << 20}},
		Bio:        "x",
		Interests:  reqs,
	}
	for _, p := range []candidate.Profile{empty, huge} {
		for _, score := range []float64{BoostScore(p, reqs), DetailedScore(p, reqs), BoostScore(p, nil), DetailedScore(p, nil)} {
			if score < 0 || score > 1 {
				t.Fatalf("score out of range: %v", score)
			}
		}
	}
}
