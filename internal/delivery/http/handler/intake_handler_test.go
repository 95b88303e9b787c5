package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"career-map/internal/delivery/http/middleware"
	"career-map/internal/domain/submission"
	"career-map/internal/form"
	"career-map/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockIntakeUsecase struct {
	created   submission.Submission
	fieldErrs []form.FieldError
	err       error

	gotLocale string
}

func (m *mockIntakeUsecase) Submit(_ context.Context, _ form.Intake, locale string) (submission.Submission, []form.FieldError, error) {
	m.gotLocale = locale
	return m.created, m.fieldErrs, m.err
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(uc usecase.IntakeUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewIntakeHandler(uc).RegisterRoutes(app)
	return app
}

func postSubmission(t *testing.T, app *fiber.App, body string, headers map[string]string) (*envelope, int) {
	t.Helper()

	req := httptest.NewRequest("POST", "/submissions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return &env, resp.StatusCode
}

func TestIntakeHandler_Submit_Created(t *testing.T) {
	id := uuid.New()
	uc := &mockIntakeUsecase{created: submission.Submission{
		ID:                id,
		Username:          "Dewi Anggraini",
		Age:               30,
		YearsOfExperience: 5,
		Skills:            []submission.Skill{{ID: uuid.New(), SubmissionID: id, Name: "Go"}},
	}}
	app := newTestApp(uc)

	env, code := postSubmission(t, app, `{"username":"Dewi Anggraini","age":30,"years_of_experience":5,"skills":[{"name":"Go"}]}`, nil)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if env.Status != fiber.StatusCreated {
		t.Fatalf("unexpected envelope status %d", env.Status)
	}

	var data struct {
		ID     uuid.UUID `json:"id"`
		Skills []struct {
			Name string `json:"name"`
		} `json:"skills"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != id || len(data.Skills) != 1 || data.Skills[0].Name != "Go" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestIntakeHandler_Submit_ValidationErrors(t *testing.T) {
	uc := &mockIntakeUsecase{
		fieldErrs: []form.FieldError{{Field: "age", Message: "age must be 18 or greater"}},
		err:       usecase.ErrValidation,
	}
	app := newTestApp(uc)

	env, code := postSubmission(t, app, `{"username":"Dewi","age":17}`, map[string]string{"Accept-Language": "id-ID"})
	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if uc.gotLocale != "id" {
		t.Fatalf("expected locale id, got %q", uc.gotLocale)
	}

	var fieldErrs []form.FieldError
	if err := json.Unmarshal(env.Data, &fieldErrs); err != nil {
		t.Fatalf("decode field errors: %v", err)
	}
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "age" {
		t.Fatalf("unexpected field errors: %+v", fieldErrs)
	}
}

func TestIntakeHandler_Submit_MalformedBody(t *testing.T) {
	app := newTestApp(&mockIntakeUsecase{})

	_, code := postSubmission(t, app, `{"username":`, nil)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestIntakeHandler_Submit_InternalError(t *testing.T) {
	app := newTestApp(&mockIntakeUsecase{err: usecase.ErrInternal})

	env, code := postSubmission(t, app, `{"username":"Dewi","age":30,"years_of_experience":5,"skills":[{"name":"Go"}]}`, nil)
	if code != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}
