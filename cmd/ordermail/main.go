package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/orderform/cmd/ordermail/cli"
)

// config is the subset of the server environment the CLI honours.
type config struct {
	Timezone    string `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`
	ProductName string `envconfig:"ORDERFORM_PRODUCT_NAME"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ordermail: load config: %v\n", err)
		return cli.ExitError
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ordermail: load timezone %q: %v\n", cfg.Timezone, err)
		return cli.ExitError
	}

	app := cli.NewOrderMailCLI(cli.SurveyPrompter{}, cli.SystemClipboard{}, func() time.Time {
		return time.Now().In(loc)
	})

	exitCode := cli.ExitOK
	root := newRootCommand(ctx, app, cfg, &exitCode)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return cli.ExitError
	}
	return exitCode
}

func newRootCommand(ctx context.Context, app *cli.OrderMailCLI, cfg config, exitCode *int) *cobra.Command {
	root := &cobra.Command{
		Use:          "ordermail",
		Short:        "Annual membership quotes and order mail bodies",
		SilenceUsage: true,
	}

	var defaults cli.DefaultsOptions
	defaultsCmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default subscription start date",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			defaults.Stdout = cmd.OutOrStdout()
			defaults.Stderr = cmd.ErrOrStderr()
			*exitCode = app.DefaultsCommand(defaults)
		},
	}
	defaultsCmd.Flags().StringVar(&defaults.Date, "date", "", "treat this YYYY-MM-DD date as today")

	var quote cli.QuoteOptions
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Print prices and the billing month",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			quote.Stdout = cmd.OutOrStdout()
			quote.Stderr = cmd.ErrOrStderr()
			*exitCode = app.QuoteCommand(quote)
		},
	}
	quoteCmd.Flags().StringVar(&quote.Quantity, "quantity", "1", "number of units (口)")
	quoteCmd.Flags().StringVar(&quote.Start, "start", "", "subscription start date, YYYY-MM-DD")
	quoteCmd.Flags().BoolVar(&quote.JSONOutput, "json", false, "print JSON")

	var mail cli.MailOptions
	mailCmd := &cobra.Command{
		Use:   "mail",
		Short: "Generate the order mail body",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mail.Stdout = cmd.OutOrStdout()
			mail.Stderr = cmd.ErrOrStderr()
			*exitCode = app.MailCommand(cmd.Context(), mail)
		},
	}
	mailCmd.Flags().StringVar(&mail.Company, "company", "", "company name")
	mailCmd.Flags().StringVar(&mail.Product, "product", cfg.ProductName, "product name")
	mailCmd.Flags().StringVar(&mail.Quantity, "quantity", "", "number of units (口), default 1")
	mailCmd.Flags().StringVar(&mail.Start, "start", "", "subscription start date, YYYY-MM-DD (default: next month's first day)")
	mailCmd.Flags().BoolVarP(&mail.Interactive, "interactive", "i", false, "prompt for missing fields")
	mailCmd.Flags().BoolVar(&mail.Copy, "copy", false, "copy the mail body to the clipboard")
	mailCmd.Flags().BoolVar(&mail.JSONOutput, "json", false, "print JSON")

	root.AddCommand(defaultsCmd, quoteCmd, mailCmd)
	root.SetContext(ctx)
	return root
}
