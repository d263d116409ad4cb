package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"krishi/pkg/terms"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Show the terms and conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPage(terms.PathTerms)
	},
}

var privacyCmd = &cobra.Command{
	Use:   "privacy",
	Short: "Show the privacy policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPage(terms.PathPrivacy)
	},
}

func printPage(path string) error {
	page, err := a.terms.Fetch(path)
	if err != nil {
		return err
	}
	if page.Title != "" {
		fmt.Println(page.Title)
		fmt.Println()
	}
	fmt.Println(page.Text)
	return nil
}
