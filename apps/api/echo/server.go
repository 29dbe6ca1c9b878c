package echoapi

import (
	"net/http"
	"os"
	"syscall"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/session"
	"github.com/Hellothereeee2312/Portal/core/student"
	"github.com/Hellothereeee2312/Portal/core/teacher"
)

type (
	Deps struct {
		Logger     core.Logger
		Gate       *session.Gate
		StudentSvc *student.Service
		TeacherSvc *teacher.Service
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server struct {
		*http.Server
		conf     *core.Config
		deps     *Deps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

// NewServer builds the API server. A nil shutdown channel is replaced by a private one.
func NewServer(conf *core.Config, shutdown chan os.Signal, deps *Deps) *Server {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
	}
	s := &Server{
		Server: &http.Server{
			Addr:         conf.Server.Address,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		conf:     conf,
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: shutdown,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = s.conf.Debug
	s.app.HideBanner = s.conf.TestMode

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(s.conf))

	registerSessionAPI(v1, jwt, s.conf, s.deps.Gate, s.deps.Validate)
	registerStudentAPI(v1, jwt, s.deps.StudentSvc, s.deps.Validate)
	registerTeacherAPI(v1, jwt, s.deps.TeacherSvc, s.deps.Validate)
}

// Start serves until the server is shut down; the outcome is sent on Errors.
func (s *Server) Start() {
	if err := s.app.StartServer(s.Server); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // a shutdown is already pending
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Portal API!")
}
