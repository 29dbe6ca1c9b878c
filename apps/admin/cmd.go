package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/Hellothereeee2312/Portal/core/app"
	"github.com/Hellothereeee2312/Portal/core/portal"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app *app.App
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed - write the sample data unless the datastore is already initialized")
	fmt.Fprintln(cli.out, "  reset - wipe the datastore and write the sample data again")
	fmt.Fprintln(cli.out, "  theme - toggle the dark mode preference")
	fmt.Fprintln(cli.out, "  login -role student|teacher -username USERNAME - sign in and print the dashboard overview")
	fmt.Fprintln(cli.out, "  export-grades -student ID [-out FILE] - write a student's grades as CSV")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginRole := loginCmd.String("role", string(portal.RoleStudent), "Either student or teacher.")
	loginUname := loginCmd.String("username", "", "The account username. The password will be prompted next.")

	exportCmd := flag.NewFlagSet("export-grades", flag.ExitOnError)
	exportStudent := exportCmd.String("student", "", "The student ID.")
	exportOut := exportCmd.String("out", "", "The output file. Defaults to stdout.")

	switch args[1] {
	case "seed":
		return cli.seed()
	case "reset":
		return cli.reset()
	case "theme":
		return cli.toggleTheme()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(portal.Role(*loginRole), *loginUname, string(pwd))
	case "export-grades":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportStudent == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.exportGrades(*exportStudent, *exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
