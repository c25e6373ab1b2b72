package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/urfave/cli/v2"
)

var (
	gameswapDataDir = appDataDir()
	statePath       = path.Join(gameswapDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "gameswap CLI"
	app.Usage = "Command line interface for the gameswapd daemon"
	app.Commands = append(
		app.Commands,
		&config,
		&register,
		&addgame,
		&removegame,
		&listgames,
		&searchgames,
		&propose,
		&accept,
		&reject,
		&counter,
		&listexchanges,
		&listactive,
		&listhistory,
		&listcounters,
		&wishlist,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gameswap-cli"
	}
	return path.Join(home, ".gameswap-cli")
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(gameswapDataDir); os.IsNotExist(err) {
		os.Mkdir(gameswapDataDir, os.ModeDir|0755)
	}

	currentData, _ := getState()
	if currentData == nil {
		currentData = map[string]string{}
	}
	for k, v := range data {
		currentData[k] = v
	}

	jsonString, err := json.Marshal(currentData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func serverURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	address, ok := state["server"]
	if !ok {
		return "", errors.New("set server with `config set server`")
	}
	return address, nil
}

func getJSON(urlPath string) (json.RawMessage, error) {
	base, err := serverURL()
	if err != nil {
		return nil, err
	}
	resp, err := http.Get(base + urlPath)
	if err != nil {
		return nil, err
	}
	return parseResponse(resp)
}

func postJSON(urlPath string, body interface{}) (json.RawMessage, error) {
	return sendJSON(http.MethodPost, urlPath, body)
}

func sendJSON(method, urlPath string, body interface{}) (json.RawMessage, error) {
	base, err := serverURL()
	if err != nil {
		return nil, err
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, base+urlPath, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	return parseResponse(resp)
}

func parseResponse(resp *http.Response) (json.RawMessage, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			return nil, errors.New(body.Error)
		}
		return nil, fmt.Errorf("server replied with status %d", resp.StatusCode)
	}
	return raw, nil
}

func printRespJSON(resp json.RawMessage) {
	if len(resp) == 0 {
		return
	}
	var out bytes.Buffer
	if err := json.Indent(&out, resp, "", "\t"); err != nil {
		fmt.Println(string(resp))
		return
	}
	fmt.Println(out.String())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[gameswap] %v\n", err)
	os.Exit(1)
}
