package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/medorahq/medora_backend/cmd/http"
	systemcmd "github.com/medorahq/medora_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "medora",
	Short: "Medora multi-tenant clinic management backend.",
	Long: `Medora is a multi-tenant backend for medical clinics. It manages clinic
staff and patients, appointment booking with conflict detection, recurring
weekly availability, appointment reminders, and outbound webhooks, all from a
single deployment.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
