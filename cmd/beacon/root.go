package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "beacon",
		Short:         "Advertise services over multicast DNS",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(recordsCmd())
	cmd.AddCommand(announceCmd())
	return cmd
}

// loadConfig reads a YAML service description.
func loadConfig(path string) (dnssd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dnssd.Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg dnssd.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return dnssd.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
