package core

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

const DateLayout = "2006-01-02"

var NowFunc = time.Now // mockable

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return NowFunc().Format(DateLayout)
}

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run,
// so config files are resolved from the root instead.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
