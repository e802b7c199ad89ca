package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/models"
)

// tokenEnv holds a previously issued token for the info command.
const tokenEnv = "AUTH_TOKEN"

const usage = `usage: auth-client [-s server] [-timeout d] <command> [args]

commands:
  register <user_id> <password> [display_name] [email]
  login    <user_id> <password>
  info     <user_id> [token]   (token defaults to $AUTH_TOKEN)
  health
  version`

var errUsage = errors.New(usage)

func run(ctx context.Context, srv adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, params := args[0], args[1:]
	switch cmd {
	case "register":
		if len(params) < 2 || len(params) > 4 {
			return errUsage
		}
		credentials := models.Credentials{UserID: params[0], Password: params[1]}
		if len(params) > 2 {
			credentials.Profile.DisplayName = params[2]
		}
		if len(params) > 3 {
			credentials.Profile.Email = params[3]
		}

		info, err := srv.Register(ctx, credentials)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		return printJSON(out, info)

	case "login":
		if len(params) != 2 {
			return errUsage
		}
		token, err := srv.Login(ctx, models.Credentials{UserID: params[0], Password: params[1]})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		return printJSON(out, token)

	case "info":
		if len(params) < 1 || len(params) > 2 {
			return errUsage
		}
		token := os.Getenv(tokenEnv)
		if len(params) == 2 {
			token = params[1]
		}
		srv.SetToken(token)

		info, err := srv.UserInfo(ctx, params[0])
		if err != nil {
			return fmt.Errorf("info: %w", err)
		}
		return printJSON(out, info)

	case "health":
		if len(params) != 0 {
			return errUsage
		}
		if err := srv.Health(ctx); err != nil {
			return fmt.Errorf("health: %w", err)
		}
		_, err := fmt.Fprintln(out, "ok")
		return err
	}

	return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
