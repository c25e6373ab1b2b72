package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	serverFlag = cli.StringFlag{
		Name:  "server",
		Usage: "gameswapd daemon address http://host:port",
		Value: "http://localhost:9420",
	}

	userFlag = cli.StringFlag{
		Name:  "user",
		Usage: "id of the user acting through the CLI",
		Value: "",
	}
)

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the gameswap CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&serverFlag,
				&userFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	for key, value := range state {
		fmt.Println(key + ": " + value)
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"server": c.String("server"),
		"user":   c.String("user"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)
	return nil
}

// actingUser returns the user id from the --user flag if given, falling back
// to the one stored in the local state.
func actingUser(c *cli.Context) (string, error) {
	if user := c.String("user"); user != "" {
		return user, nil
	}
	state, err := getState()
	if err != nil {
		return "", err
	}
	user, ok := state["user"]
	if !ok || user == "" {
		return "", errors.New("set user with `config set user` or pass --user")
	}
	return user, nil
}
