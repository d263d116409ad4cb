package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"krishi/entities"
	"krishi/pkg/cropcal"
)

var (
	calFilter string
	calOut    string

	calProject     string
	calDescription string
	calCropName    string
	calCropType    string
	calSeason      string
	calLocation    string
	calFieldSize   float64
	calStartDate   string
	calSeedVariety string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage crop calendars",
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crop calendars",
	RunE:  runCalendarList,
}

var calendarShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one crop calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarShow,
}

var calendarDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a calendar from the local view",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarDelete,
}

var calendarCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a crop calendar",
	RunE:  runCalendarCreate,
}

var calendarExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export calendars to an xlsx workbook",
	RunE:  runCalendarExport,
}

func init() {
	for _, c := range []*cobra.Command{calendarListCmd, calendarExportCmd} {
		c.Flags().StringVar(&calFilter, "filter", "all", "all, active or completed")
	}
	calendarExportCmd.Flags().StringVar(&calOut, "out", "crop-calendar.xlsx", "output file")

	calendarCreateCmd.Flags().StringVar(&calProject, "project", "", "project name")
	calendarCreateCmd.Flags().StringVar(&calDescription, "description", "", "project description")
	calendarCreateCmd.Flags().StringVar(&calCropName, "crop", "", "crop name")
	calendarCreateCmd.Flags().StringVar(&calCropType, "type", "",
		"crop type ("+strings.Join(entities.CropTypes, ", ")+")")
	calendarCreateCmd.Flags().StringVar(&calSeason, "season", "",
		"season ("+strings.Join(entities.Seasons, ", ")+")")
	calendarCreateCmd.Flags().StringVar(&calLocation, "location", "", "field location")
	calendarCreateCmd.Flags().Float64Var(&calFieldSize, "size", 0, "field size in hectares")
	calendarCreateCmd.Flags().StringVar(&calStartDate, "start", "", "start date (YYYY-MM-DD)")
	calendarCreateCmd.Flags().StringVar(&calSeedVariety, "seed", "", "seed variety")

	calendarCmd.AddCommand(calendarListCmd, calendarShowCmd, calendarDeleteCmd,
		calendarCreateCmd, calendarExportCmd)
}

func parseFilter(v string) (cropcal.Filter, error) {
	switch cropcal.Filter(v) {
	case cropcal.FilterAll, cropcal.FilterActive, cropcal.FilterCompleted:
		return cropcal.Filter(v), nil
	}
	return "", fmt.Errorf("unknown filter %q, want all, active or completed", v)
}

func runCalendarList(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	filter, err := parseFilter(calFilter)
	if err != nil {
		return err
	}
	if err := a.calendar.Refresh(); err != nil {
		return err
	}
	active, completed := a.calendar.Stats()
	fmt.Printf("%d active, %d completed\n\n", active, completed)
	for _, cal := range a.calendar.Calendars(filter) {
		fmt.Printf("%-6s %-20s %-12s %-8s %s\n",
			cal.ID, cal.ProjectName, cal.CropName, cal.Season, cal.Status)
	}
	return nil
}

func runCalendarShow(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	cal, err := a.calendar.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Project:    %s\n", cal.ProjectName)
	if cal.ProjectDescription != "" {
		fmt.Printf("About:      %s\n", cal.ProjectDescription)
	}
	fmt.Printf("Crop:       %s (%s)\n", cal.CropName, cal.CropType)
	fmt.Printf("Season:     %s\n", cal.Season)
	fmt.Printf("Field size: %.2f ha\n", cal.FieldSize)
	fmt.Printf("Location:   %s\n", cal.Location)
	fmt.Printf("Start date: %s\n", cal.StartDate)
	fmt.Printf("Status:     %s\n", cal.Status)
	if cal.Expert != nil {
		fmt.Printf("Expert:     %s\n", cal.Expert.Name)
	}
	return nil
}

func runCalendarDelete(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	fmt.Printf("Remove calendar %s from the list? [y/N] ", args[0])
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
		fmt.Println("Kept")
		return nil
	}
	if err := a.calendar.Refresh(); err != nil {
		return err
	}
	if err := a.calendar.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Removed from this view")
	return nil
}

func runCalendarCreate(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	err := a.calendar.Create(entities.CropCalendar{
		ProjectName:        calProject,
		ProjectDescription: calDescription,
		CropName:           calCropName,
		CropType:           calCropType,
		Season:             calSeason,
		Location:           calLocation,
		FieldSize:          calFieldSize,
		StartDate:          calStartDate,
		SeedVariety:        calSeedVariety,
	})
	if err != nil {
		var fe cropcal.FieldErrors
		if errors.As(err, &fe) {
			for field, msg := range fe {
				fmt.Printf("%s: %s\n", field, msg)
			}
			return errors.New("calendar not created")
		}
		return err
	}
	fmt.Println("Crop calendar created")
	return nil
}

func runCalendarExport(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	filter, err := parseFilter(calFilter)
	if err != nil {
		return err
	}
	if err := a.calendar.Refresh(); err != nil {
		return err
	}
	if err := a.calendar.ExportXLSX(calOut, filter); err != nil {
		return err
	}
	fmt.Println("Wrote", calOut)
	return nil
}
