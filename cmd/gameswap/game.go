package main

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

var addgame = cli.Command{
	Name:  "addgame",
	Usage: "add a game to the acting user's library",
	Flags: []cli.Flag{
		&userFlag,
		&cli.StringFlag{
			Name:  "title",
			Usage: "title of the game",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "genre",
			Usage: "genre of the game",
			Value: "",
		},
	},
	Action: addGameAction,
}

var removegame = cli.Command{
	Name:      "removegame",
	Usage:     "remove a game from the acting user's library",
	ArgsUsage: "<gameID>",
	Flags:     []cli.Flag{&userFlag},
	Action:    removeGameAction,
}

var listgames = cli.Command{
	Name:  "listgames",
	Usage: "list the games of the acting user",
	Flags: []cli.Flag{
		&userFlag,
		&cli.BoolFlag{
			Name:  "available",
			Usage: "list only games not tied up in an exchange",
		},
	},
	Action: listGamesAction,
}

var searchgames = cli.Command{
	Name:  "searchgames",
	Usage: "search the whole catalog by title and genre",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "substring of the title to search for",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "genre",
			Usage: "exact genre to filter by",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "available",
			Usage: "list only games not tied up in an exchange",
		},
	},
	Action: searchGamesAction,
}

func addGameAction(ctx *cli.Context) error {
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	resp, err := postJSON("/v1/games", map[string]string{
		"ownerId": user,
		"title":   ctx.String("title"),
		"genre":   ctx.String("genre"),
	})
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func removeGameAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("game id is missing")
	}
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	gameID := ctx.Args().First()
	_, err = sendJSON(
		"DELETE", fmt.Sprintf("/v1/games/%s?ownerId=%s", gameID, user), nil,
	)
	if err != nil {
		return err
	}

	fmt.Println("game removed")
	return nil
}

func listGamesAction(ctx *cli.Context) error {
	user, err := actingUser(ctx)
	if err != nil {
		return err
	}

	urlPath := fmt.Sprintf("/v1/users/%s/games", user)
	if ctx.Bool("available") {
		urlPath += "?available=true"
	}
	resp, err := getJSON(urlPath)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}

func searchGamesAction(ctx *cli.Context) error {
	query := url.Values{}
	if title := ctx.String("title"); title != "" {
		query.Set("title", title)
	}
	if genre := ctx.String("genre"); genre != "" {
		query.Set("genre", genre)
	}
	if ctx.Bool("available") {
		query.Set("available", "true")
	}

	urlPath := "/v1/games"
	if encoded := query.Encode(); encoded != "" {
		urlPath += "?" + encoded
	}
	resp, err := getJSON(urlPath)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
