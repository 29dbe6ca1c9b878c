package dig_container

import (
	"context"
	"fmt"
	"log"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/Hellothereeee2312/Portal/apps/api/echo"
	"github.com/Hellothereeee2312/Portal/core"
	"github.com/Hellothereeee2312/Portal/core/app"
	"github.com/Hellothereeee2312/Portal/core/portal"
	logsvc "github.com/Hellothereeee2312/Portal/services/logger"
	"github.com/Hellothereeee2312/Portal/storage/database"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	return logsvc.New(conf, "API")
}

func newDBLogger(conf *core.Config) core.Logger {
	return logsvc.New(conf, "DB")
}

func newBackend(conf *core.Config, loggerParam DBLoggerParam) portal.Backend {
	backend, err := database.Open(context.Background(), conf)
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return backend
}

func newApp(conf *core.Config, logger core.Logger, backend portal.Backend) (*app.App, error) {
	return app.New(context.Background(), conf, logger, backend)
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newServer(
	conf *core.Config,
	a *app.App,
	validate *validator.Validate,
	translator ut.Translator,
) *echoapi.Server {
	return echoapi.NewServer(conf, nil, &echoapi.Deps{
		Logger:     a.Logger,
		Gate:       a.Gate,
		StudentSvc: a.Students,
		TeacherSvc: a.Teachers,
		Validate:   validate,
		Translator: translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newBackend))
	must(c.Provide(newApp))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
