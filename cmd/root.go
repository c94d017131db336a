package cmd

import (
	"context"
	"os"

	"github.com/finpercent/finpercent/internal/app"
	"github.com/finpercent/finpercent/internal/config"
	"github.com/finpercent/finpercent/pkg/currency"
	"github.com/finpercent/finpercent/pkg/preference"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFile    string
	cfg        config.Application
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "finpercent",
		Short: "Budget allocation and income tax calculator",
		Long:  "Split income with the NWS, Kakeibo or STOP methods, estimate income tax and plan debt repayment.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", app.ConfigPath, "Configuration file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before the configuration")

	root.AddCommand(
		newServeCommand(opts),
		newAllocateCommand(opts),
		newTaxCommand(opts),
		newCurrencyCommand(opts),
		newDebtCommand(opts),
	)
	return root
}

// currencyService reads the preferred currency from the local preferences file.
func (o *rootOptions) currencyService() (*currency.ServiceImpl, error) {
	path := o.cfg.Cli.PreferencesFile
	if path == "" {
		var err error
		path, err = preference.DefaultFilePath()
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("Using preferences file %s", path)
	return currency.NewService(preference.NewFileStore(path), nil), nil
}

func (o *rootOptions) preferredCurrency(ctx context.Context) (currency.Currency, error) {
	service, err := o.currencyService()
	if err != nil {
		return currency.Currency{}, err
	}
	return service.Current(ctx)
}
