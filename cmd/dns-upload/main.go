package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"

	"github.com/awstools/awstools/internal/awsapi"
	"github.com/awstools/awstools/internal/config"
	configenv "github.com/awstools/awstools/internal/config/sources/env"
	"github.com/awstools/awstools/internal/csvsource"
	"github.com/awstools/awstools/internal/models"
	"github.com/awstools/awstools/internal/notify"
	"github.com/awstools/awstools/internal/report"
	"github.com/awstools/awstools/internal/upload"
	"github.com/awstools/awstools/internal/verify"
	"github.com/awstools/awstools/internal/zones"
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

var ErrNoCSVFile = errors.New("no CSV file specified, use --create-template to create one to fill in")

func newRootCmd(logger *log.Logger, buildInfo models.BuildInformation) *cobra.Command {
	var dryRun, createTemplate, verifyRecords bool

	cmd := &cobra.Command{
		Use:     "dns-upload [csv_file]",
		Short:   "Bulk upload DNS records from a CSV file to Route 53",
		Version: buildInfo.VersionString(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, logger, buildInfo,
				dryRun, createTemplate, verifyRecords)
		},
		SilenceUsage: true,
	}

	flagSet := cmd.Flags()
	flagSet.BoolVar(&dryRun, "dry-run", false,
		"show what would be done without making actual changes")
	flagSet.BoolVar(&createTemplate, "create-template", false,
		"create a template CSV file and exit")
	flagSet.BoolVar(&verifyRecords, "verify", false,
		"after a live run, query each uploaded record against a DNS resolver")

	return cmd
}

func run(ctx context.Context, args []string, logger *log.Logger,
	buildInfo models.BuildInformation,
	dryRun, createTemplate, verifyRecords bool) (err error) {
	printSplash(buildInfo)

	settings, err := readSettings(logger)
	if err != nil {
		return err
	}

	console := report.NewConsole()

	if createTemplate {
		path, err := csvsource.WriteTemplate()
		if err != nil {
			return err
		}
		console.Successf("Created template CSV at %s", path)
		console.Noticef("Please fill this template with your DNS records and run the tool again.")
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("%w", ErrNoCSVFile)
	}

	csvFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening CSV file: %w", err)
	}
	defer csvFile.Close()

	file, err := csvsource.New(csvFile)
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
	api := awsapi.NewRoute53(awsConfig)

	runner := upload.NewRunner(upload.Settings{
		API:      api,
		Resolver: zones.NewResolver(api),
		Reporter: console,
		RowDelay: settings.Upload.RowDelay,
	})

	summary, submitted, err := runner.Run(ctx, file, dryRun)
	if err != nil {
		notifier.Notify("DNS upload interrupted: " + err.Error())
		return err
	}

	console.Successf("Summary: %s", summary)
	notifier.Notify("DNS upload summary: " + summary.String())

	if verifyRecords && !dryRun {
		checker := verify.NewChecker(verify.Settings{
			Reporter: console,
			Resolver: settings.Upload.VerifyResolver,
		})
		checker.Check(ctx, submitted)
	}

	return nil
}

func readSettings(logger *log.Logger) (settings config.Settings, err error) {
	envSource := configenv.New(logger)
	settings, err = envSource.Read()
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
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
