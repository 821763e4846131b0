package recommender

import (
	"NopeNet/internal/model"
	"strings"
	"testing"
)

func results(types ...model.AttackType) []model.DetectionResult {
	out := make([]model.DetectionResult, len(types))
	for i, t := range types {
		out[i] = model.DetectionResult{AttackType: t}
	}
	return out
}

func attackTypes(recs []model.Recommendation) []model.AttackType {
	out := make([]model.AttackType, len(recs))
	for i, r := range recs {
		out[i] = r.AttackType
	}
	return out
}

func TestRecommend_FixedOrder(t *testing.T) {
	tests := []struct {
		name  string
		input []model.DetectionResult
		want  []model.AttackType
	}{
		{"empty batch", nil, []model.AttackType{model.AttackNormal}},
		{"all normal", results(model.AttackNormal, model.AttackNormal), []model.AttackType{model.AttackNormal}},
		{"probe before dos in input", results(model.AttackProbe, model.AttackDOS), []model.AttackType{model.AttackDOS, model.AttackProbe}},
		{"duplicates collapse", results(model.AttackU2R, model.AttackU2R, model.AttackNormal), []model.AttackType{model.AttackU2R}},
		{
			"all categories reversed",
			results(model.AttackU2R, model.AttackR2L, model.AttackProbe, model.AttackDOS, model.AttackNormal),
			[]model.AttackType{model.AttackDOS, model.AttackProbe, model.AttackR2L, model.AttackU2R},
		},
		{"r2l frequent dos rare", results(model.AttackR2L, model.AttackR2L, model.AttackR2L, model.AttackDOS), []model.AttackType{model.AttackDOS, model.AttackR2L}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attackTypes(Recommend(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Recommend() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Recommend()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecommend_TextsAndIDs(t *testing.T) {
	recs := Recommend(results(model.AttackDOS, model.AttackProbe, model.AttackR2L, model.AttackU2R))
	wantIDs := []int{1, 2, 3, 4}
	wantWords := []string{"rate limiting", "port scan", "multi-factor", "least privilege"}

	for i, r := range recs {
		if r.ID != wantIDs[i] {
			t.Errorf("%s: ID = %d, want %d", r.AttackType, r.ID, wantIDs[i])
		}
		if !strings.Contains(r.Text, wantWords[i]) {
			t.Errorf("%s: text %q does not mention %q", r.AttackType, r.Text, wantWords[i])
		}
	}

	fallback := Recommend(nil)[0]
	if fallback.ID != 5 || !strings.Contains(fallback.Text, "Continue monitoring") {
		t.Errorf("Unexpected fallback entry: %+v", fallback)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	in := results(model.AttackR2L, model.AttackDOS, model.AttackNormal)
	first := Recommend(in)
	second := Recommend(in)
	if len(first) != len(second) {
		t.Fatalf("Lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFor(t *testing.T) {
	if r, ok := For(model.AttackProbe); !ok || r.ID != 2 {
		t.Errorf("For(Probe) = %+v, %v", r, ok)
	}
	if _, ok := For(model.AttackType("worm")); ok {
		t.Error("Expected unknown category to have no recommendation")
	}
}
