package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var wishlist = cli.Command{
	Name:   "wishlist",
	Usage:  "Print the acting user's wishlist",
	Flags:  []cli.Flag{&userFlag},
	Action: wishlistAction,
	Subcommands: []*cli.Command{
		{
			Name:      "add",
			Usage:     "add a game to the wishlist",
			ArgsUsage: "<gameID>",
			Flags:     []cli.Flag{&userFlag},
			Action:    wishlistAddAction,
		},
		{
			Name:      "remove",
			Usage:     "remove a game from the wishlist",
			ArgsUsage: "<gameID>",
			Flags:     []cli.Flag{&userFlag},
			Action:    wishlistRemoveAction,
		},
	},
}

func wishlistAction(ctx *cli.Context) error {
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	resp, err := getJSON(fmt.Sprintf("/v1/users/%s/wishlist", user))
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func wishlistAddAction(ctx *cli.Context) error {
	return wishlistEditAction(ctx, "PUT", "added to")
}

func wishlistRemoveAction(ctx *cli.Context) error {
	return wishlistEditAction(ctx, "DELETE", "removed from")
}

func wishlistEditAction(ctx *cli.Context, method, verb string) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("game id is missing")
	}
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	gameID := ctx.Args().First()
	_, err = sendJSON(
		method, fmt.Sprintf("/v1/users/%s/wishlist/%s", user, gameID), nil,
	)
	if err != nil {
		return err
	}

	fmt.Printf("game %s wishlist\n", verb)
	return nil
}
