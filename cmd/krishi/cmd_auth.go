package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"krishi/entities"
	"krishi/pkg/auth"
	"krishi/pkg/geocode"
	"krishi/pkg/session"
)

var (
	flagRole     string
	flagPhone    string
	flagEmail    string
	flagPassword string

	flagName     string
	flagPhoto    string
	flagLat      float64
	flagLon      float64
	flagNoLocate bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a farmer or an agri expert",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session",
	RunE:  runWhoami,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&flagRole, "role", "farmer", "farmer or expert")
		c.Flags().StringVar(&flagPhone, "phone", "", "phone number (farmer)")
		c.Flags().StringVar(&flagEmail, "email", "", "email address (expert)")
		c.Flags().StringVar(&flagPassword, "password", "", "account password")
	}
	registerCmd.Flags().StringVar(&flagName, "name", "", "display name")
	registerCmd.Flags().StringVar(&flagPhoto, "photo", "", "profile photo URI")
	registerCmd.Flags().Float64Var(&flagLat, "lat", 0, "farm latitude")
	registerCmd.Flags().Float64Var(&flagLon, "lon", 0, "farm longitude")
	registerCmd.Flags().BoolVar(&flagNoLocate, "no-location", false, "skip the location lookup")
}

func roleFromFlag() (string, error) {
	switch flagRole {
	case "farmer":
		return entities.RoleFarmer, nil
	case "expert":
		return entities.RoleExpert, nil
	}
	return "", fmt.Errorf("unknown role %q, want farmer or expert", flagRole)
}

func runLogin(cmd *cobra.Command, args []string) error {
	role, err := roleFromFlag()
	if err != nil {
		return err
	}
	u, err := a.auth.Login(auth.LoginForm{
		Role:        role,
		PhoneNumber: flagPhone,
		Email:       flagEmail,
		Password:    flagPassword,
	})
	if err != nil {
		var fe auth.FieldErrors
		if errors.As(err, &fe) {
			for _, msg := range fe {
				fmt.Println(msg)
			}
			return errors.New("login aborted")
		}
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	role, err := roleFromFlag()
	if err != nil {
		return err
	}
	u, err := a.auth.Register(auth.RegisterForm{
		Role:        role,
		Name:        flagName,
		PhoneNumber: flagPhone,
		Email:       flagEmail,
		Password:    flagPassword,
	})
	if err != nil {
		var fe auth.FieldErrors
		if errors.As(err, &fe) {
			for _, msg := range fe {
				fmt.Println(msg)
			}
			return errors.New("registration aborted")
		}
		return err
	}

	// Optional profile step, mirrors the post-signup setup screen.
	var loc geocode.Locator
	switch {
	case flagNoLocate:
		loc = geocode.DeniedLocator{}
	case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
		loc = geocode.StaticLocator{Latitude: flagLat, Longitude: flagLon}
	}
	if loc != nil || flagPhoto != "" {
		rev := geocode.NewHTTPReverser(a.cfg.GeocodeURL, a.cfg.HTTPTimeout)
		a.auth.CompleteProfile(flagPhoto, loc, rev)
	}

	fmt.Printf("Welcome, %s\n", u.Name)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	u, ok := a.sessions.Current()
	if !ok {
		fmt.Println("No active session")
		return nil
	}
	fmt.Printf("Name:     %s\n", u.Name)
	fmt.Printf("Role:     %s\n", u.Role)
	if u.PhoneNumber != "" {
		fmt.Printf("Phone:    %s\n", u.PhoneNumber)
	}
	if u.Email != "" {
		fmt.Printf("Email:    %s\n", u.Email)
	}
	if u.Location != "" {
		fmt.Printf("Location: %s\n", u.Location)
	}
	if info, ok := session.InspectToken(a.sessions.Token()); ok {
		fmt.Printf("Token:    subject %s", info.Subject)
		if !info.ExpiresAt.IsZero() {
			fmt.Printf(", expires %s", info.ExpiresAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a.auth.Logout()
	fmt.Println("Logged out")
	return nil
}
