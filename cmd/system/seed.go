package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/medorahq/medora_backend/config"
	"github.com/medorahq/medora_backend/pkg/database"
	"github.com/medorahq/medora_backend/pkg/util/password"
)

func NewSeedCommand() *cobra.Command {
	var (
		clinicName string
		timezone   string
		email      string
		pass       string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create an initial clinic with a CLINIC_ADMIN account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if pass == "" {
				pass = password.Generate(16)
				fmt.Printf("Generated admin password: %s\n", pass)
			}

			params := password.FromCentralConfig(cfg.Password).ToParams()
			hash, err := password.HashWithParams(pass, params)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			cl, err := client.Clinic.Create().
				SetName(clinicName).
				SetTimezone(timezone).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create clinic: %w", err)
			}

			admin, err := client.User.Create().
				SetClinicID(cl.ID).
				SetEmail(email).
				SetPasswordHash(hash).
				SetRole("CLINIC_ADMIN").
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}

			fmt.Printf("Seeded clinic %s with admin %s.\n", cl.ID, admin.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&clinicName, "clinic", "Demo Clinic", "Name of the clinic to create")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone of the clinic")
	cmd.Flags().StringVar(&email, "email", "admin@example.com", "Email of the admin account")
	cmd.Flags().StringVar(&pass, "password", "", "Password of the admin account (generated when empty)")

	return cmd
}
