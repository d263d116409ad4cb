// Command krishi is the terminal client for the KrishiAadhar platform.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"krishi/config"
	"krishi/database"
	"krishi/pkg/api"
	"krishi/pkg/auth"
	"krishi/pkg/cropcal"
	"krishi/pkg/feed"
	"krishi/pkg/localstore"
	"krishi/pkg/servicereq"
	"krishi/pkg/session"
	"krishi/pkg/terms"
)

// app carries the wired services for the command handlers.
type app struct {
	cfg      config.AppConfig
	sessions *session.Store
	auth     *auth.Service
	requests *servicereq.Service
	calendar *cropcal.Service
	feed     *feed.Service
	terms    *terms.Fetcher
}

var a *app

var rootCmd = &cobra.Command{
	Use:           "krishi",
	Short:         "KrishiAadhar agricultural services client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := database.OpenSQLite(cfg.DBPath)
		sessions := session.NewStore(localstore.New(db))
		sessions.Load()

		client := api.NewHTTP(cfg.BaseURL, cfg.HTTPTimeout)
		a = &app{
			cfg:      cfg,
			sessions: sessions,
			auth:     auth.New(client, sessions),
			requests: servicereq.New(client, sessions),
			calendar: cropcal.New(client, sessions),
			feed:     feed.New(client, sessions),
			terms:    terms.NewFetcher(cfg.TermsURL, cfg.PrivacyURL, cfg.HTTPTimeout),
		}
	},
}

// requireLogin is shared by every command that talks to authenticated
// endpoints. Without a stored session there is nothing to do.
func requireLogin() error {
	if _, ok := a.sessions.Current(); !ok {
		return fmt.Errorf("not logged in, run `krishi login` first")
	}
	return nil
}

func main() {
	rootCmd.AddCommand(
		loginCmd, registerCmd, whoamiCmd, logoutCmd,
		requestCmd, calendarCmd, feedCmd,
		termsCmd, privacyCmd,
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
