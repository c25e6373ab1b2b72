package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var propose = cli.Command{
	Name:  "propose",
	Usage: "propose an exchange to another user",
	Flags: []cli.Flag{
		&userFlag,
		&cli.StringFlag{
			Name:  "to",
			Usage: "id of the user receiving the proposal",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "offer",
			Usage: "id of the game offered by the acting user",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "request",
			Usage: "id of the game requested from the other user",
			Value: "",
		},
	},
	Action: proposeAction,
}

var accept = cli.Command{
	Name:      "accept",
	Usage:     "accept a pending exchange",
	ArgsUsage: "<exchangeID>",
	Flags:     []cli.Flag{&userFlag},
	Action:    acceptAction,
}

var reject = cli.Command{
	Name:      "reject",
	Usage:     "reject a pending exchange",
	ArgsUsage: "<exchangeID>",
	Flags:     []cli.Flag{&userFlag},
	Action:    rejectAction,
}

var counter = cli.Command{
	Name:      "counter",
	Usage:     "answer a pending exchange with a counter-proposal",
	ArgsUsage: "<exchangeID>",
	Flags: []cli.Flag{
		&userFlag,
		&cli.StringFlag{
			Name:  "offer",
			Usage: "id of the game offered in the counter-proposal",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "request",
			Usage: "id of the game requested in the counter-proposal",
			Value: "",
		},
	},
	Action: counterAction,
}

var listexchanges = cli.Command{
	Name:   "listexchanges",
	Usage:  "list every exchange known to the daemon",
	Action: listAllExchangesAction,
}

var listactive = cli.Command{
	Name:   "listactive",
	Usage:  "list the acting user's exchanges still awaiting an answer",
	Flags:  []cli.Flag{&userFlag},
	Action: listActiveAction,
}

var listhistory = cli.Command{
	Name:   "listhistory",
	Usage:  "list the acting user's resolved exchanges, most recent first",
	Flags:  []cli.Flag{&userFlag},
	Action: listHistoryAction,
}

var listcounters = cli.Command{
	Name:   "listcounters",
	Usage:  "list the counter-proposals waiting for the acting user",
	Flags:  []cli.Flag{&userFlag},
	Action: listCountersAction,
}

func proposeAction(ctx *cli.Context) error {
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	resp, err := postJSON("/v1/exchanges", map[string]string{
		"proposerId":      user,
		"recipientId":     ctx.String("to"),
		"offeredGameId":   ctx.String("offer"),
		"requestedGameId": ctx.String("request"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func acceptAction(ctx *cli.Context) error {
	return resolveAction(ctx, "accept")
}

func rejectAction(ctx *cli.Context) error {
	return resolveAction(ctx, "reject")
}

func resolveAction(ctx *cli.Context, verb string) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("exchange id is missing")
	}
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	exchangeID := ctx.Args().First()
	resp, err := postJSON(
		fmt.Sprintf("/v1/exchanges/%s/%s", exchangeID, verb),
		map[string]string{"actorId": user},
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func counterAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("exchange id is missing")
	}
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	exchangeID := ctx.Args().First()
	resp, err := postJSON(
		fmt.Sprintf("/v1/exchanges/%s/counter", exchangeID),
		map[string]string{
			"actorId":         user,
			"offeredGameId":   ctx.String("offer"),
			"requestedGameId": ctx.String("request"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func listAllExchangesAction(_ *cli.Context) error {
	resp, err := getJSON("/v1/exchanges")
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func listActiveAction(ctx *cli.Context) error {
	return listExchangesAction(ctx, "active")
}

func listHistoryAction(ctx *cli.Context) error {
	return listExchangesAction(ctx, "history")
}

func listCountersAction(ctx *cli.Context) error {
	return listExchangesAction(ctx, "counters")
}

func listExchangesAction(ctx *cli.Context, kind string) error {
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	resp, err := getJSON(fmt.Sprintf("/v1/users/%s/exchanges/%s", user, kind))
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
