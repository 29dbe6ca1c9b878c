package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) seed() error {
	seeded, err := cli.app.Store.SeedIfEmpty(context.Background())
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintln(cli.out, "sample data written")
	} else {
		fmt.Fprintln(cli.out, "datastore already initialized")
	}
	return nil
}

func (cli *commandLine) reset() error {
	if err := cli.app.Store.Reset(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "datastore reset to sample data")
	return nil
}

func (cli *commandLine) toggleTheme() error {
	enabled, err := cli.app.Gate.ToggleTheme(context.Background())
	if err != nil {
		return err
	}
	mode := "off"
	if enabled {
		mode = "on"
	}
	fmt.Fprintf(cli.out, "dark mode: %s\n", mode)
	return nil
}
