package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/candidate"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/domain/vacancy"
	"hrsuite/internal/repository/jsonfile"
	"hrsuite/internal/security"
	"hrsuite/internal/store"
)

// Valid CPFs used as fixture primary keys.
const (
	adminTaxID     = "52998224725"
	managerTaxID   = "11144477735"
	recruiterTaxID = "12345678909"
	candidateTaxID = "98765432100"
)

const testPassword = "secret123"

type noopLogger struct{}

func (noopLogger) Info(msg string)  {}
func (noopLogger) Error(msg string) {}

type testEnv struct {
	path         string
	store        *store.Store
	auth         *AuthService
	users        *UserService
	candidates   *CandidateService
	vacancies    *VacancyService
	applications *ApplicationService
	interviews   *InterviewService
	hirings      *HiringService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := noopLogger{}
	path := filepath.Join(t.TempDir(), "snapshot.json")
	st := store.Open(path, logger)
	if err := st.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}

	userRepo := jsonfile.NewUserRepository(st)
	candidateRepo := jsonfile.NewCandidateRepository(st)
	vacancyRepo := jsonfile.NewVacancyRepository(st)
	applicationRepo := jsonfile.NewApplicationRepository(st)
	interviewRepo := jsonfile.NewInterviewRepository(st)
	hiringRepo := jsonfile.NewHiringRepository(st)

	hasher := security.NewPasswordHasher(4)
	jwtProvider := security.NewJWTProvider("test-secret")

	return &testEnv{
		path:         path,
		store:        st,
		auth:         NewAuthService(userRepo, hasher, jwtProvider, logger, time.Hour),
		users:        NewUserService(userRepo, hasher),
		candidates:   NewCandidateService(candidateRepo),
		vacancies:    NewVacancyService(vacancyRepo, userRepo),
		applications: NewApplicationService(applicationRepo, candidateRepo, vacancyRepo),
		interviews:   NewInterviewService(interviewRepo, applicationRepo, userRepo),
		hirings:      NewHiringService(hiringRepo, applicationRepo, vacancyRepo, userRepo, logger),
	}
}

func (e *testEnv) createUser(t *testing.T, name, taxID, login string, role user.Role) *user.User {
	t.Helper()
	account, err := e.users.Create(context.Background(), UserInput{
		Person: person.Person{
			Name:  name,
			TaxID: taxID,
			Email: login + "@example.com",
		},
		Login:    login,
		Password: testPassword,
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("create user %s: %v", login, err)
	}
	return account
}

func (e *testEnv) seedStaff(t *testing.T) {
	t.Helper()
	e.createUser(t, "Alice Admin", adminTaxID, "alice", user.RoleAdmin)
	e.createUser(t, "Marcos Manager", managerTaxID, "marcos", user.RoleManager)
	e.createUser(t, "Rita Recruiter", recruiterTaxID, "rita", user.RoleRecruiter)
}

func (e *testEnv) registerCandidate(t *testing.T) *candidate.Candidate {
	t.Helper()
	registered, err := e.candidates.Register(context.Background(), candidate.Candidate{
		Person: person.Person{
			Name:  "Carla Candidate",
			TaxID: candidateTaxID,
			Email: "carla@example.com",
		},
		Education:  "BSc",
		Experience: "5 years",
	})
	if err != nil {
		t.Fatalf("register candidate: %v", err)
	}
	return registered
}

func (e *testEnv) openVacancy(t *testing.T) *vacancy.Vacancy {
	t.Helper()
	opened, err := e.vacancies.Open(context.Background(), vacancy.Vacancy{
		Title:      "Backend Developer",
		Department: "Engineering",
		BaseSalary: 9000,
		Regime:     vacancy.RegimeCLT,
		ManagerID:  managerTaxID,
	})
	if err != nil {
		t.Fatalf("open vacancy: %v", err)
	}
	return opened
}

// approvedApplication walks a candidacy to the approved state the short way.
func (e *testEnv) approvedApplication(t *testing.T, vacancyID common.UUID) {
	t.Helper()
	if _, err := e.applications.Apply(context.Background(), candidateTaxID, vacancyID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := e.applications.SetStatus(context.Background(), candidateTaxID, vacancyID, "approved"); err != nil {
		t.Fatalf("approve application: %v", err)
	}
}

func assertCode(t *testing.T, err error, code common.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if !common.Is(err, code) {
		t.Fatalf("expected code %s, got %v", code, err)
	}
}
