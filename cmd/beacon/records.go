package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
)

func recordsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the DNS record set a service would advertise",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			service, err := dnssd.New(cfg)
			if err != nil {
				return err
			}

			records, err := service.Records()
			if err != nil {
				return err
			}

			for _, rec := range records {
				rr, err := rec.RR()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rr.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML service description")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
