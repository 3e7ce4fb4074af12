package service

import (
	"context"
	"strings"
	"testing"

	"scent-match/internal/catalog"
	"scent-match/internal/domain"
	"scent-match/internal/llm"
)

const validRecipeJSON = `{"testingRecipe":{"granules":[
	{"id":"CT-2201101","name":"Amanecer de Azahar","mainCategory":"citrus","drops":6,"ratio":30,"reason":"refuerza la salida"},
	{"id":"WD-2201302","name":"Cedro de Invierno","mainCategory":"woody","drops":4,"ratio":20,"reason":"fondo seco"}
]}}`

func newRecipeService(t *testing.T, client llm.Client) *RecipeService {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewRecipeService(nil, client, cat, nil, nil)
}

func recipeFeedback(t *testing.T, retention float64) domain.FeedbackRecord {
	t.Helper()
	fb, err := domain.NewFeedbackRecord("CT-2201101", &retention, nil, nil, nil)
	if err != nil {
		t.Fatalf("feedback: %v", err)
	}
	return fb
}

func TestCustomizeRecipe_FullRetentionSkipsModel(t *testing.T) {
	mock := &llm.MockClient{Response: validRecipeJSON}
	svc := newRecipeService(t, mock)

	session, failure := svc.CustomizeRecipe(context.Background(), "u1", recipeFeedback(t, 100))
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if session.Status != domain.RecipeStatusFinal {
		t.Fatalf("expected final status, got %q", session.Status)
	}
	if session.Recipe != nil {
		t.Fatalf("expected nil recipe for full retention")
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no model calls, got %d", mock.Calls)
	}
}

func TestCustomizeRecipe_ValidFirstAttempt(t *testing.T) {
	mock := &llm.MockClient{Response: validRecipeJSON}
	svc := newRecipeService(t, mock)

	session, failure := svc.CustomizeRecipe(context.Background(), "u1", recipeFeedback(t, 70))
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if session.Status != domain.RecipeStatusValidated {
		t.Fatalf("expected validated status, got %q", session.Status)
	}
	if session.Attempts != 1 {
		t.Fatalf("expected single attempt, got %d", session.Attempts)
	}
	if session.Recipe == nil || len(session.Recipe.Granules) != 2 {
		t.Fatalf("unexpected recipe: %+v", session.Recipe)
	}
	if len(session.Recipe.CategoryGraph) == 0 {
		t.Fatalf("expected synthesized category graph")
	}
	if !strings.Contains(mock.LastPrompt, "CT-2201101 | Amanecer de Azahar") {
		t.Fatalf("prompt should list catalog entries: %q", mock.LastPrompt)
	}
}

func TestCustomizeRecipe_RetriesOnceWithAmendedPrompt(t *testing.T) {
	bad := `{"testingRecipe":{"granules":[{"id":"CT-2201101","name":"Nombre Equivocado","drops":1,"ratio":10,"reason":"x"}]}}`
	mock := &llm.MockClient{Responses: []string{bad, validRecipeJSON}}
	svc := newRecipeService(t, mock)

	session, failure := svc.CustomizeRecipe(context.Background(), "u1", recipeFeedback(t, 70))
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if session.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", session.Attempts)
	}
	if mock.Calls != 2 {
		t.Fatalf("expected 2 model calls, got %d", mock.Calls)
	}
	if !strings.Contains(mock.LastPrompt, "ATENCION") {
		t.Fatalf("retry prompt should name the violation: %q", mock.LastPrompt)
	}
	if !strings.Contains(mock.LastPrompt, "Nombre Equivocado") {
		t.Fatalf("retry prompt should include received name: %q", mock.LastPrompt)
	}
}

func TestCustomizeRecipe_ParseFailureRetriesSamePrompt(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{"no es json", validRecipeJSON}}
	svc := newRecipeService(t, mock)

	session, failure := svc.CustomizeRecipe(context.Background(), "u1", recipeFeedback(t, 70))
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if session.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", session.Attempts)
	}
	// Parse roto no es atribuible al contenido: el prompt no se enmienda.
	if strings.Contains(mock.LastPrompt, "ATENCION") {
		t.Fatalf("parse failure must retry the unchanged prompt: %q", mock.LastPrompt)
	}
}

func TestCustomizeRecipe_ExhaustedRetriesReturnTerminalFailure(t *testing.T) {
	unknown := `{"testingRecipe":{"granules":[{"id":"ZZ-9999999","name":"Fantasma","drops":1,"ratio":10,"reason":"x"}]}}`
	mock := &llm.MockClient{Response: unknown}
	svc := newRecipeService(t, mock)

	session, failure := svc.CustomizeRecipe(context.Background(), "u1", recipeFeedback(t, 70))
	if failure == nil {
		t.Fatalf("expected terminal failure")
	}
	if failure.Status != 500 {
		t.Fatalf("expected status 500, got %d", failure.Status)
	}
	if !strings.Contains(failure.Error, "ZZ-9999999") {
		t.Fatalf("expected last error detail, got %q", failure.Error)
	}
	if mock.Calls != 2 {
		t.Fatalf("expected exactly one retry (2 calls), got %d", mock.Calls)
	}
	if session.Status != domain.RecipeStatusFailed {
		t.Fatalf("expected failed status, got %q", session.Status)
	}
}

func TestCustomizeRecipe_UnknownPersona(t *testing.T) {
	mock := &llm.MockClient{Response: validRecipeJSON}
	svc := newRecipeService(t, mock)

	fb := recipeFeedback(t, 70)
	fb.PersonaID = "XX-0000000"
	_, failure := svc.CustomizeRecipe(context.Background(), "u1", fb)
	if failure == nil || failure.Status != 404 {
		t.Fatalf("expected 404 failure, got %+v", failure)
	}
}

func TestValidate_ShortCircuitOrder(t *testing.T) {
	svc := newRecipeService(t, &llm.MockClient{})

	// Retencion parcial sin granulos.
	empty := domain.CandidateRecipe{TestingRecipe: &domain.TestingRecipe{}}
	if res := svc.Validate(empty, 70); res.OK || res.Reason != "no granules produced" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res := svc.Validate(domain.CandidateRecipe{}, 70); res.OK {
		t.Fatalf("nil recipe with partial retention must fail")
	}

	// Retencion total admite receta nula.
	if res := svc.Validate(domain.CandidateRecipe{}, 100); !res.OK {
		t.Fatalf("nil recipe with full retention must pass: %+v", res)
	}

	missing := domain.CandidateRecipe{TestingRecipe: &domain.TestingRecipe{
		Granules: []domain.Granule{{ID: "CT-2201101", Name: "  "}},
	}}
	if res := svc.Validate(missing, 70); res.OK || res.Reason != "missing id or name" {
		t.Fatalf("unexpected result: %+v", res)
	}

	unknown := domain.CandidateRecipe{TestingRecipe: &domain.TestingRecipe{
		Granules: []domain.Granule{{ID: "QQ-1", Name: "Quien Sabe"}},
	}}
	if res := svc.Validate(unknown, 70); res.OK || !strings.Contains(res.Reason, "does not exist") {
		t.Fatalf("unexpected result: %+v", res)
	}

	mismatch := domain.CandidateRecipe{TestingRecipe: &domain.TestingRecipe{
		Granules: []domain.Granule{{ID: "CT-2201101", Name: "Otro Nombre"}},
	}}
	res := svc.Validate(mismatch, 70)
	if res.OK || !strings.Contains(res.Reason, "Amanecer de Azahar") || !strings.Contains(res.Reason, "Otro Nombre") {
		t.Fatalf("mismatch reason must report expected and received: %+v", res)
	}
}
