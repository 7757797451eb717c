package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"

	"github.com/awstools/awstools/internal/awsapi"
	"github.com/awstools/awstools/internal/config"
	configenv "github.com/awstools/awstools/internal/config/sources/env"
	"github.com/awstools/awstools/internal/instance"
	"github.com/awstools/awstools/internal/models"
	"github.com/awstools/awstools/internal/notify"
	"github.com/awstools/awstools/internal/report"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	err := newRootCmd(logger, buildInfo).ExecuteContext(ctx)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

type flags struct {
	instanceID string
	nameTag    string
	region     string
	profile    string
	wait       bool
	timeout    uint
	dryRun     bool
	verbose    bool
}

func newRootCmd(logger *log.Logger, buildInfo models.BuildInformation) *cobra.Command {
	var parsed flags

	cmd := &cobra.Command{
		Use:     "ec2-reboot",
		Short:   "Reboot an EC2 instance by instance ID or Name tag",
		Version: buildInfo.VersionString(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), logger, buildInfo, parsed)
		},
		SilenceUsage: true,
	}

	flagSet := cmd.Flags()
	flagSet.StringVar(&parsed.instanceID, "instance-id", "", "EC2 instance ID to reboot")
	flagSet.StringVar(&parsed.nameTag, "name", "", "EC2 instance Name tag to search for")
	flagSet.StringVar(&parsed.region, "region", "",
		"AWS region (default: AWS_REGION environment variable or us-west-2)")
	flagSet.StringVar(&parsed.profile, "profile", "", "AWS profile to use")
	flagSet.BoolVar(&parsed.wait, "wait", false,
		"wait for the instance to pass all status checks after the reboot")
	flagSet.UintVar(&parsed.timeout, "timeout", 600, //nolint:gomnd
		"timeout in seconds when waiting for the instance status")
	flagSet.BoolVar(&parsed.dryRun, "dry-run", false,
		"show what would be done without making actual changes")
	flagSet.BoolVar(&parsed.verbose, "verbose", false,
		"show the API request ID and CloudTrail lookup guidance")

	cmd.MarkFlagsMutuallyExclusive("instance-id", "name")
	cmd.MarkFlagsOneRequired("instance-id", "name")

	return cmd
}

func run(ctx context.Context, logger *log.Logger,
	buildInfo models.BuildInformation, parsed flags) (err error) {
	printSplash(buildInfo)

	settings, err := readSettings(logger, parsed)
	if err != nil {
		return err
	}

	notifier, err := notify.New(notify.Settings{
		Addresses:    settings.Notify.Addresses,
		DefaultTitle: settings.Notify.DefaultTitle,
		Logger:       logger.New(log.SetComponent("notify")),
	})
	if err != nil {
		return fmt.Errorf("setting up notifications: %w", err)
	}

	awsConfig, err := awsapi.LoadConfig(ctx, awsapi.Settings{
		Region:          settings.AWS.Region,
		Profile:         settings.AWS.Profile,
		AccessKeyID:     settings.AWS.AccessKeyID,
		SecretAccessKey: settings.AWS.SecretAccessKey,
	})
	if err != nil {
		return err
	}
	api := awsapi.NewEC2(awsConfig)

	console := report.NewConsole()

	instanceID := parsed.instanceID
	if parsed.nameTag != "" {
		locator := instance.NewLocator(api)
		instanceID, err = locator.FindByNameTag(ctx, parsed.nameTag)
		if err != nil {
			return err
		}
	}

	rebooter := instance.New(instance.Settings{
		API:      api,
		Reporter: console,
		Region:   settings.AWS.Region,
		Verbose:  parsed.verbose,
	})

	err = rebooter.Reboot(ctx, instanceID, parsed.dryRun)
	if err != nil {
		notifier.Notify("EC2 reboot failed: " + err.Error())
		return err
	}

	if parsed.wait && !parsed.dryRun {
		timeout := time.Duration(parsed.timeout) * time.Second
		err = rebooter.WaitStatusOK(ctx, instanceID, timeout)
		if err != nil {
			notifier.Notify("EC2 reboot wait failed: " + err.Error())
			return err
		}
	}

	console.Successf("Reboot operation completed successfully.")
	notifier.Notify("Rebooted EC2 instance " + instanceID)

	if !parsed.dryRun && !parsed.verbose {
		console.Noticef("For detailed API verification, run again with the --verbose flag.")
	}

	return nil
}

func readSettings(logger *log.Logger, parsed flags) (
	settings config.Settings, err error) {
	envSource := configenv.New(logger)
	envSettings, err := envSource.Read()
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	// flags take precedence over environment variables
	flagSettings := config.Settings{
		AWS: config.AWS{
			Region:  parsed.region,
			Profile: parsed.profile,
		},
	}

	settings = flagSettings.MergeWith(envSettings)
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(settings.Logger.ToOptions()...)
	logger.Debug(settings.String())
	return settings, nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "awstools",
		Repository: "awstools",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}
