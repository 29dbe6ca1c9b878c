package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Hellothereeee2312/Portal/core/portal"
	"github.com/Hellothereeee2312/Portal/core/student"
	"github.com/Hellothereeee2312/Portal/core/teacher"
)

// login opens a session, prints the overview of the dashboard it grants and closes it.
func (cli *commandLine) login(role portal.Role, uname, pwd string) error {
	ctx := context.Background()
	usr, err := cli.app.Gate.Login(ctx, role, uname, pwd)
	if err != nil {
		return err
	}
	defer cli.app.Gate.Logout()

	var overview interface{}
	switch dash := cli.app.Gate.Active().(type) {
	case *student.Dashboard:
		overview = dash.Overview(ctx)
	case *teacher.Dashboard:
		overview = dash.Overview(ctx)
	}

	fmt.Fprintf(cli.out, "Welcome, %s (%s)\n", usr.Name, usr.Role)
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(overview)
}

func (cli *commandLine) exportGrades(studentID, path string) error {
	ctx := context.Background()
	if _, err := cli.app.Students.GetProfile(ctx, studentID); err != nil {
		return err
	}
	if path == "" {
		return cli.app.Students.ExportGrades(ctx, studentID, cli.out)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = cli.app.Students.ExportGrades(ctx, studentID, f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "grades written to %s\n", path)
	return nil
}
