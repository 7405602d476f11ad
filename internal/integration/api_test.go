package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talentmatch/internal/database"
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/delivery/http/routes"
	"talentmatch/internal/domain/skill"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/repository"
	"talentmatch/internal/usecase"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type resolutionData struct {
	Original  string  `json:"original"`
	Resolved  string  `json:"resolved"`
	Score     float64 `json:"score"`
	Corrected bool    `json:"corrected"`
}

type jobRecommendationData struct {
	Job struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	} `json:"job"`
	Score         float64  `json:"score"`
	MissingSkills []string `json:"missing_skills"`
}

type vocabStub struct{ entries []skill.CanonicalSkill }

func (s vocabStub) ListActive(context.Context) ([]skill.CanonicalSkill, error) {
	return s.entries, nil
}

func (s vocabStub) Create(context.Context, string, string, string) (skill.CanonicalSkill, error) {
	return skill.CanonicalSkill{}, nil
}

type auditStub struct{}

func (auditStub) Append(context.Context, skill.CorrectionLog) error { return nil }
func (auditStub) Stats(context.Context) (repository.CorrectionStats, error) {
	return repository.CorrectionStats{}, nil
}
func (auditStub) Recent(context.Context, int) ([]skill.CorrectionLog, error) { return nil, nil }

type profileStub struct {
	profiles map[uuid.UUID]repository.CandidateProfile
}

func (s profileStub) GetByUserID(_ context.Context, id uuid.UUID) (repository.CandidateProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return repository.CandidateProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (s profileStub) ListAvailable(context.Context) ([]repository.CandidateProfile, error) {
	out := make([]repository.CandidateProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (s profileStub) UpdateSkills(_ context.Context, id uuid.UUID, skills string) error {
	p, ok := s.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.Skills = skills
	s.profiles[id] = p
	return nil
}

type jobsStub struct{ jobs []repository.Job }

func (s jobsStub) GetByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return repository.Job{}, repository.ErrJobNotFound
}

func (s jobsStub) ListActive(context.Context) ([]repository.Job, error) { return s.jobs, nil }
func (s jobsStub) ListRecentActive(context.Context, int) ([]repository.Job, error) {
	return s.jobs, nil
}

type matchStub struct{}

func (matchStub) Upsert(context.Context, repository.MatchResultUpsert) error { return nil }
func (matchStub) GetByPair(context.Context, uuid.UUID, uuid.UUID) (repository.MatchResult, error) {
	return repository.MatchResult{}, nil
}

type dbStub struct{}

func (dbStub) Ping(context.Context) error { return nil }
func (dbStub) Close() error               { return nil }
func (dbStub) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (dbStub) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}
func (dbStub) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (dbStub) Begin(context.Context) (database.Tx, error)            { return nil, nil }

func newTestAPI(t *testing.T) (*fiber.App, jwt.Service, uuid.UUID) {
	t.Helper()

	logger := log.New(io.Discard, "", 0)
	candidateID := uuid.New()

	vocab := vocabStub{entries: []skill.CanonicalSkill{
		{Name: "python", Aliases: "py"},
		{Name: "react", Aliases: "reactjs"},
		{Name: "sql"},
	}}
	profiles := profileStub{profiles: map[uuid.UUID]repository.CandidateProfile{
		candidateID: {
			UserID:          candidateID,
			Skills:          "python, react, sql",
			ExperienceYears: 4,
			Available:       true,
		},
	}}
	jobs := jobsStub{jobs: []repository.Job{
		{
			ID:              uuid.New(),
			Title:           "Fullstack Developer",
			Requirements:    "python, react, sql, docker",
			ExperienceYears: 3,
			WorkMode:        "remote",
			IsActive:        true,
			CreatedAt:       time.Now().UTC(),
		},
	}}

	jwtSvc := jwt.NewHMACService("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour)

	resolver := usecase.NewSkillResolver(vocab, auditStub{}, logger)
	recUC := usecase.NewRecommendationUsecase(profiles, jobs, matchStub{}, nil, logger)
	profileUC := usecase.NewProfileUsecase(profiles, resolver)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(dbStub{}, nil),
		Profile:        handler.NewProfileHandler(profileUC),
		Skill:          handler.NewSkillHandler(vocab, resolver),
		Recommendation: handler.NewRecommendationHandler(recUC),
		AuthMw:         middleware.NewAuthMiddleware(jwtSvc),
	}
	registry.Register(app)

	return app, jwtSvc, candidateID
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp, env
}

func TestAPI_Health(t *testing.T) {
	app, _, _ := newTestAPI(t)

	resp, env := doRequest(t, app, http.MethodGet, "/health", "", nil)
	if resp.StatusCode != http.StatusOK || env.Status != http.StatusOK {
		t.Fatalf("unexpected health status: http=%d envelope=%d", resp.StatusCode, env.Status)
	}
}

func TestAPI_ResolveSkill(t *testing.T) {
	app, _, _ := newTestAPI(t)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/skills/resolve", "", map[string]string{"term": "pythn"})
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected envelope status: %d (%s)", env.Status, env.Message)
	}

	var data resolutionData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Resolved != "python" || !data.Corrected {
		t.Fatalf("expected typo corrected to python, got %+v", data)
	}
}

func TestAPI_Recommendations_RequireToken(t *testing.T) {
	app, _, _ := newTestAPI(t)

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/recommendations/jobs", "", nil)
	if resp.StatusCode != http.StatusUnauthorized || env.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got http=%d envelope=%d", resp.StatusCode, env.Status)
	}
}

func TestAPI_Recommendations_WithToken(t *testing.T) {
	app, jwtSvc, candidateID := newTestAPI(t)

	token, err := jwtSvc.GenerateAccessToken(candidateID, "candidate@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/recommendations/jobs", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", resp.StatusCode, env.Message)
	}

	var recs []jobRecommendationData
	if err := json.Unmarshal(env.Data, &recs); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(recs))
	}
	if recs[0].Score <= 0.1 {
		t.Fatalf("score unexpectedly low: %v", recs[0].Score)
	}
	if len(recs[0].MissingSkills) != 1 || recs[0].MissingSkills[0] != "docker" {
		t.Fatalf("expected docker as the only gap, got %v", recs[0].MissingSkills)
	}
}

func TestAPI_UpdateSkills_Canonicalizes(t *testing.T) {
	app, jwtSvc, candidateID := newTestAPI(t)

	token, err := jwtSvc.GenerateAccessToken(candidateID, "candidate@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, env := doRequest(t, app, http.MethodPut, "/api/v1/profiles/me/skills", token,
		map[string]string{"skills": "Python, ReactJS, PY"})
	if env.Status != http.StatusOK {
		t.Fatalf("unexpected envelope status: %d (%s)", env.Status, env.Message)
	}

	var data struct {
		Skills string `json:"skills"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Skills != "python, react" {
		t.Fatalf("expected canonicalized skills, got %q", data.Skills)
	}
}
