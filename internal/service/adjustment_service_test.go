package service

import (
	"math"
	"strings"
	"testing"

	"scent-match/internal/domain"
)

func feedbackWith(t *testing.T, retention float64, prefs map[string]domain.CategoryPreference, chars map[string]domain.CharacteristicLevel, added []domain.RequestedScent) domain.FeedbackRecord {
	t.Helper()
	fb, err := domain.NewFeedbackRecord("CT-2201101", &retention, prefs, chars, added)
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	return fb
}

func testPersona() domain.PersonaRecord {
	return domain.PersonaRecord{
		ID:   "CT-2201101",
		Name: "Amanecer de Azahar",
		Traits: domain.TraitVector{
			Sensuality: 3, Cuteness: 6, Charisma: 5, Darkness: 2, Freshness: 9,
			Elegance: 5, Freedom: 7, Luxury: 3, Purity: 8, Uniqueness: 4,
		},
		Categories: domain.CategoryVector{Citrus: 9, Floral: 4, Fruity: 3},
	}
}

func TestDeriveAdjustments_BaseAmountScalesWithRetention(t *testing.T) {
	engine := NewAdjustmentEngine(nil)

	fb := feedbackWith(t, 50, nil, nil, nil)
	rec := engine.DeriveAdjustments(fb, testPersona())

	if rec.BaseAmount != 25.0 {
		t.Fatalf("expected base amount 25.0, got %v", rec.BaseAmount)
	}
	if len(rec.Adjustments) != 1 {
		t.Fatalf("expected single base entry, got %d", len(rec.Adjustments))
	}
	base := rec.Adjustments[0]
	if base.Type != domain.AdjustmentBase || base.Amount != 25.0 {
		t.Fatalf("unexpected base entry: %+v", base)
	}
}

func TestOppositeCategory_IsInvolutive(t *testing.T) {
	for _, cat := range domain.CategoryAxes {
		op, ok := OppositeCategory(cat)
		if !ok {
			t.Fatalf("missing opposite for %s", cat)
		}
		back, ok := OppositeCategory(op)
		if !ok || back != cat {
			t.Fatalf("opposite(opposite(%s)) = %s, want %s", cat, back, cat)
		}
	}
	if op, _ := OppositeCategory(domain.CategoryCitrus); op != domain.CategoryWoody {
		t.Fatalf("expected citrus opposite woody, got %s", op)
	}
}

func TestDeriveAdjustments_CategoryPreferences(t *testing.T) {
	engine := NewAdjustmentEngine(nil)

	fb := feedbackWith(t, 100, map[string]domain.CategoryPreference{
		domain.CategoryCitrus: domain.PreferenceIncrease,
		domain.CategoryFloral: domain.PreferenceDecrease,
	}, nil, nil)
	rec := engine.DeriveAdjustments(fb, testPersona())

	var gotIncrease, gotOpposite bool
	for _, adj := range rec.Adjustments {
		if adj.Type != domain.AdjustmentIncrease {
			continue
		}
		switch adj.Note {
		case domain.CategoryCitrus:
			gotIncrease = true
			if adj.Amount != 3.0 {
				t.Fatalf("expected increase amount 3.0, got %v", adj.Amount)
			}
		case domain.CategorySpicy:
			// Bajar floral se modela como subir su opuesta.
			gotOpposite = true
			if adj.Amount != 2.0 {
				t.Fatalf("expected opposite amount 2.0, got %v", adj.Amount)
			}
		case domain.CategoryFloral:
			t.Fatalf("decrease must never emit an entry for the decreased category")
		}
	}
	if !gotIncrease || !gotOpposite {
		t.Fatalf("missing category adjustments: increase=%v opposite=%v", gotIncrease, gotOpposite)
	}
}

func TestDeriveAdjustments_CharacteristicAmounts(t *testing.T) {
	engine := NewAdjustmentEngine(nil)

	fb := feedbackWith(t, 100, nil, map[string]domain.CharacteristicLevel{
		domain.CharacteristicSweetness:  domain.LevelVeryHigh,
		domain.CharacteristicFreshness:  domain.LevelLow,
		domain.CharacteristicWeight:     domain.LevelMedium,
		domain.CharacteristicUniqueness: domain.LevelVeryLow,
	}, nil)
	rec := engine.DeriveAdjustments(fb, testPersona())

	amounts := map[string]float64{}
	for _, adj := range rec.Adjustments {
		if adj.Type == domain.AdjustmentIncrease {
			amounts[adj.Note] = adj.Amount
		}
	}

	if got := amounts["Cereza Negra"]; got != 3.0 {
		t.Fatalf("veryHigh sweetness: expected 3.0, got %v", got)
	}
	if got := amounts["Almizcle de Seda"]; got != 2.0 {
		t.Fatalf("low freshness: expected 2.0, got %v", got)
	}
	if got := amounts["Eco de Algodon"]; got != 1.0 {
		t.Fatalf("veryLow uniqueness: expected 1.0, got %v", got)
	}
	// medium no genera ajuste: 3 caracteristicas + base = 4 entradas.
	if len(rec.Adjustments) != 4 {
		t.Fatalf("expected 4 adjustments, got %d: %+v", len(rec.Adjustments), rec.Adjustments)
	}
}

func TestDeriveAdjustments_AddedScents(t *testing.T) {
	engine := NewAdjustmentEngine(nil)

	fb := feedbackWith(t, 50, nil, nil, []domain.RequestedScent{
		{ID: "WD-2201302", Name: "Cedro de Invierno", Action: "add", Ratio: 40},
		{Name: "ignorada", Action: "remove", Ratio: 40},
	})
	rec := engine.DeriveAdjustments(fb, testPersona())

	var got float64
	for _, adj := range rec.Adjustments {
		if adj.Note == "Cedro de Invierno" {
			got = adj.Amount
		}
		if adj.Note == "ignorada" {
			t.Fatalf("non-add scents must not emit adjustments")
		}
	}
	// (40/100) * 5 * 0.5
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected added scent amount 1.0, got %v", got)
	}
}

func TestDeriveAdjustments_TooManyScentsRejectedUpstream(t *testing.T) {
	retention := 100.0
	_, err := domain.NewFeedbackRecord("CT-2201101", &retention, nil, nil, []domain.RequestedScent{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	})
	if err != domain.ErrTooManyAddedScents {
		t.Fatalf("expected ErrTooManyAddedScents, got %v", err)
	}
}

func TestBuildExplanation_RetentionPhrasings(t *testing.T) {
	engine := NewAdjustmentEngine(nil)
	persona := testPersona()

	full := engine.DeriveAdjustments(feedbackWith(t, 100, nil, nil, nil), persona)
	if !strings.Contains(full.Explanation, "tal como esta") {
		t.Fatalf("unexpected 100%% phrasing: %q", full.Explanation)
	}

	zero := engine.DeriveAdjustments(feedbackWith(t, 0, nil, nil, nil), persona)
	if !strings.Contains(zero.Explanation, "desde cero") {
		t.Fatalf("unexpected 0%% phrasing: %q", zero.Explanation)
	}

	half := engine.DeriveAdjustments(feedbackWith(t, 50, nil, nil, nil), persona)
	if !strings.Contains(half.Explanation, "50%") {
		t.Fatalf("unexpected partial phrasing: %q", half.Explanation)
	}
}

func TestBuildExplanation_ListsNonBaseAdjustments(t *testing.T) {
	engine := NewAdjustmentEngine(nil)

	fb := feedbackWith(t, 100, map[string]domain.CategoryPreference{
		domain.CategoryWoody: domain.PreferenceIncrease,
	}, nil, nil)
	rec := engine.DeriveAdjustments(fb, testPersona())

	if !strings.Contains(rec.Explanation, "la familia amaderada") {
		t.Fatalf("expected woody clause in explanation: %q", rec.Explanation)
	}
	if !strings.Contains(rec.Explanation, "3.0ml") {
		t.Fatalf("expected amount in explanation: %q", rec.Explanation)
	}
}
