package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"krishi/entities"
	"krishi/pkg/servicereq"
)

var (
	reqLocation  string
	reqIrrType   string
	reqCropType  string
	reqSoilType  string
	reqArea      float64
	reqSprayDate string
	reqQuery     string
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Submit a service request",
}

var irrigationCmd = &cobra.Command{
	Use:   "irrigation",
	Short: "Request a smart irrigation setup",
	RunE:  runIrrigation,
}

var sprayingCmd = &cobra.Command{
	Use:   "spraying",
	Short: "Request a drone spraying visit",
	RunE:  runSpraying,
}

var visitCmd = &cobra.Command{
	Use:   "visit",
	Short: "Request an expert field visit",
	RunE:  runVisit,
}

func init() {
	for _, c := range []*cobra.Command{irrigationCmd, sprayingCmd, visitCmd} {
		c.Flags().StringVar(&reqLocation, "location", "", "farm location")
		c.Flags().StringVar(&reqCropType, "crop", "", "crop type")
		c.Flags().Float64Var(&reqArea, "area", 0, "area in hectares")
		c.Flags().StringVar(&reqQuery, "query", "", "free-form note for the provider")
	}
	irrigationCmd.Flags().StringVar(&reqIrrType, "type", "",
		"irrigation type ("+strings.Join(entities.IrrigationTypes, ", ")+")")
	sprayingCmd.Flags().StringVar(&reqSprayDate, "date", "", "spray date (YYYY-MM-DD)")
	visitCmd.Flags().StringVar(&reqSoilType, "soil", "", "soil type")
	requestCmd.AddCommand(irrigationCmd, sprayingCmd, visitCmd)
}

func reportSubmission(sub servicereq.Submission, err error) error {
	if err != nil {
		var fe servicereq.FieldErrors
		if errors.As(err, &fe) {
			for field, msg := range fe {
				fmt.Printf("%s: %s\n", field, msg)
			}
			return errors.New("request not submitted")
		}
		return err
	}
	fmt.Println(sub.Message)
	return nil
}

func runIrrigation(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	sub, err := a.requests.SubmitIrrigation(entities.SmartIrrigationRequest{
		FarmLocation:   reqLocation,
		IrrigationType: reqIrrType,
		AreaInHectares: reqArea,
		CropType:       reqCropType,
		Query:          reqQuery,
	})
	return reportSubmission(sub, err)
}

func runSpraying(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	sub, err := a.requests.SubmitSpraying(entities.DroneSprayingRequest{
		FarmLocation:   reqLocation,
		CropType:       reqCropType,
		AreaInHectares: reqArea,
		SprayDate:      reqSprayDate,
		Query:          reqQuery,
	})
	return reportSubmission(sub, err)
}

func runVisit(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	sub, err := a.requests.SubmitExpertVisit(entities.ExpertVisitRequest{
		FarmLocation:   reqLocation,
		SoilType:       reqSoilType,
		CropType:       reqCropType,
		AreaInHectares: reqArea,
		Query:          reqQuery,
	})
	return reportSubmission(sub, err)
}
