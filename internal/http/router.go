package http

import (
	"net/http"
	"strings"
	"time"

	"hrsuite/internal/domain/user"
	"hrsuite/internal/http/handlers"
	httpmw "hrsuite/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	CandidateHandler   *handlers.CandidateHandler
	VacancyHandler     *handlers.VacancyHandler
	ApplicationHandler *handlers.ApplicationHandler
	InterviewHandler   *handlers.InterviewHandler
	HiringHandler      *handlers.HiringHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Limiter            httpmw.Limiter
	LoginRateLimit     int
	LoginRateWindow    time.Duration
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			limited := httpmw.RateLimit(r.deps.Limiter, httpmw.ClientIP, r.deps.LoginRateLimit, r.deps.LoginRateWindow)(http.HandlerFunc(r.deps.AuthHandler.Login))
			limited.ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/vacancies":
			r.deps.VacancyHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/vacancies/"):
			r.deps.VacancyHandler.Get(w, req)
			return
		}

		protectedPrefixes := []string{"/auth/password", "/users", "/candidates", "/vacancies", "/applications", "/interviews", "/hirings"}
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) {
				protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(r.handleProtected))
				protected.ServeHTTP(w, req)
				return
			}
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	admin := httpmw.RequireRole(user.RoleAdmin)
	manager := httpmw.RequireRole(user.RoleManager, user.RoleAdmin)
	recruiter := httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)
	staff := httpmw.RequireRole(user.RoleRecruiter, user.RoleManager, user.RoleAdmin)

	switch {
	case req.Method == http.MethodPost && path == "/auth/password":
		r.deps.AuthHandler.ChangePassword(w, req)

	case req.Method == http.MethodPost && path == "/users":
		admin(http.HandlerFunc(r.deps.UserHandler.Create)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/users":
		admin(http.HandlerFunc(r.deps.UserHandler.List)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/users/"):
		admin(http.HandlerFunc(r.deps.UserHandler.Get)).ServeHTTP(w, req)
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/users/"):
		admin(http.HandlerFunc(r.deps.UserHandler.Update)).ServeHTTP(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/users/"):
		manager(http.HandlerFunc(r.deps.UserHandler.Delete)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/candidates":
		recruiter(http.HandlerFunc(r.deps.CandidateHandler.Register)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/candidates":
		staff(http.HandlerFunc(r.deps.CandidateHandler.List)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/candidates/"):
		staff(http.HandlerFunc(r.deps.CandidateHandler.Get)).ServeHTTP(w, req)
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/candidates/"):
		recruiter(http.HandlerFunc(r.deps.CandidateHandler.Update)).ServeHTTP(w, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/candidates/"):
		recruiter(http.HandlerFunc(r.deps.CandidateHandler.Delete)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/vacancies":
		manager(http.HandlerFunc(r.deps.VacancyHandler.Open)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/assign") && strings.HasPrefix(path, "/vacancies/"):
		manager(http.HandlerFunc(r.deps.VacancyHandler.Assign)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/close") && strings.HasPrefix(path, "/vacancies/"):
		manager(http.HandlerFunc(r.deps.VacancyHandler.Close)).ServeHTTP(w, req)
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/vacancies/"):
		manager(http.HandlerFunc(r.deps.VacancyHandler.Update)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/applications":
		recruiter(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
	case req.Method == http.MethodPatch && path == "/applications/status":
		staff(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
	case req.Method == http.MethodDelete && path == "/applications":
		recruiter(http.HandlerFunc(r.deps.ApplicationHandler.Delete)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/applications":
		staff(http.HandlerFunc(r.deps.ApplicationHandler.List)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/interviews":
		recruiter(http.HandlerFunc(r.deps.InterviewHandler.Schedule)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/result") && strings.HasPrefix(path, "/interviews/"):
		staff(http.HandlerFunc(r.deps.InterviewHandler.Complete)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/interviews":
		staff(http.HandlerFunc(r.deps.InterviewHandler.List)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/hirings":
		recruiter(http.HandlerFunc(r.deps.HiringHandler.Request)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/authorize") && strings.HasPrefix(path, "/hirings/"):
		manager(http.HandlerFunc(r.deps.HiringHandler.Authorize)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/reject") && strings.HasPrefix(path, "/hirings/"):
		manager(http.HandlerFunc(r.deps.HiringHandler.Reject)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(path, "/finalize") && strings.HasPrefix(path, "/hirings/"):
		manager(http.HandlerFunc(r.deps.HiringHandler.Finalize)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/hirings":
		staff(http.HandlerFunc(r.deps.HiringHandler.List)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/hirings/"):
		staff(http.HandlerFunc(r.deps.HiringHandler.Get)).ServeHTTP(w, req)

	default:
		http.NotFound(w, req)
	}
}
