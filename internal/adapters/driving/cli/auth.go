package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/mindgarden-labs/scribesync/internal/connectors/gmail"
)

// authPaths resolves the credentials and token file locations after
// flags are parsed. Injected by the composition root.
var authPaths func() (credentials, token string, err error)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorise mailbox access",
	Long: `Runs the OAuth authorisation flow for the Gmail account that
receives notebook export emails.

Requires an installed-app OAuth client. Download its credentials.json
from the Google Cloud console and place it in the config directory,
then run this command and follow the printed URL. The resulting token
is saved next to the credentials and refreshed automatically.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

// SetAuthPaths injects the resolver for credentials and token file
// locations.
func SetAuthPaths(resolve func() (credentials, token string, err error)) {
	authPaths = resolve
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if authPaths == nil {
		return fmt.Errorf("auth file locations not configured")
	}
	credentialsPath, tokenPath, err := authPaths()
	if err != nil {
		return err
	}

	cfg, err := gmail.LoadOAuthConfig(credentialsPath)
	if err != nil {
		return err
	}

	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	cmd.Printf("Open the following URL in your browser:\n\n%s\n\n", url)
	cmd.Print("Enter the authorisation code: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorisation code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorisation code provided")
	}

	token, err := cfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchange authorisation code: %w", err)
	}

	if err := gmail.SaveToken(tokenPath, token); err != nil {
		return err
	}

	cmd.Printf("Token saved to %s\n", tokenPath)
	return nil
}
