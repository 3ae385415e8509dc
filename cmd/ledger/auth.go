package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/project-ledger/internal/cli"
	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/config"
	"github.com/Veraticus/project-ledger/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Sheets",
		Long: `Authenticate with Google Sheets using OAuth2.

This command will:
1. Open a local callback server and print the consent URL
2. Exchange the authorization code for a token
3. Save the token so "sheets:<id>" inputs can be read

Service accounts (sheets.service_account_path) need no authentication step.`,
		Args: cobra.NoArgs,
		RunE: runAuth,
	}

	cmd.Flags().String("client-id", "", "OAuth2 Client ID (overrides config)")
	cmd.Flags().String("client-secret", "", "OAuth2 Client Secret (overrides config)")
	cmd.Flags().String("token-file", "", "Where to store the token (default: $HOME/.config/ledger/sheets-token.json)")

	return cmd
}

func runAuth(cmd *cobra.Command, _ []string) error {
	clientID := viper.GetString("sheets.client_id")
	clientSecret := viper.GetString("sheets.client_secret")
	tokenFile := viper.GetString("sheets.token_file")

	// Override with flags if provided
	if flagID, _ := cmd.Flags().GetString("client-id"); flagID != "" {
		clientID = flagID
	}
	if flagSecret, _ := cmd.Flags().GetString("client-secret"); flagSecret != "" {
		clientSecret = flagSecret
	}
	if flagToken, _ := cmd.Flags().GetString("token-file"); flagToken != "" {
		tokenFile = flagToken
	}

	// Check for environment variables as fallback
	if clientID == "" {
		clientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if tokenFile == "" {
		tokenFile = config.DefaultTokenFile()
	}

	if clientID == "" || clientSecret == "" {
		return common.NewUserError(
			"OAuth2 credentials not found. Set sheets.client_id and sheets.client_secret or use --client-id and --client-secret",
			common.ErrMissingConfig)
	}

	tokenFile = config.ExpandPath(tokenFile)
	slog.Info("Starting Google Sheets authentication", "token_file", tokenFile)

	if _, err := sheets.AuthenticateOAuth2Interactive(cmd.Context(), sheets.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    tokenFile,
	}); err != nil {
		return common.NewUserError("Authentication failed", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Google Sheets token saved to "+tokenFile))
	return nil
}
