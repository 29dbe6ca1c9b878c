package logsvc

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Hellothereeee2312/Portal/core"
)

// New builds the logger selected by conf.LogBackend, tagged with prefix.
func New(conf *core.Config, prefix string) core.Logger {
	if conf.LogBackend == "zap" {
		var zl *zap.Logger
		var err error
		if conf.Debug {
			zl, err = zap.NewDevelopment()
		} else {
			zl, err = zap.NewProduction()
		}
		if err != nil {
			log.Fatalf("logsvc.New(): %v", err)
		}
		return NewZapLogger(zl.Named(strings.ToLower(prefix)))
	}

	logger := NewRollbarLogger(
		log.New(os.Stdout, strings.ToUpper(prefix)+" : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}
