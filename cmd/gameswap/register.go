package main

import (
	"github.com/urfave/cli/v2"
)

var register = cli.Command{
	Name:  "register",
	Usage: "register a new user",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "display name of the user",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "email",
			Usage: "email of the user",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "password of the user",
			Value: "",
		},
	},
	Action: registerAction,
}

func registerAction(ctx *cli.Context) error {
	resp, err := postJSON("/v1/users", map[string]string{
		"name":     ctx.String("name"),
		"email":    ctx.String("email"),
		"password": ctx.String("password"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
