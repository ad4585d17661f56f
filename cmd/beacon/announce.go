package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beacon-protocol/beacon-go/pkg/announce"
	"github.com/beacon-protocol/beacon-go/pkg/log"
)

func announceCmd() *cobra.Command {
	var (
		configPath string
		eventFile  string
	)

	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Broadcast a service until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := log.Logger(log.NewSlogAdapter(slog.Default()))
			if eventFile != "" {
				fl, err := log.NewFileLogger(eventFile)
				if err != nil {
					return fmt.Errorf("opening event log: %w", err)
				}
				defer fl.Close()
				logger = log.NewMultiLogger(logger, fl)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			announcer := announce.New(announce.NewZeroconfResponder(),
				announce.WithLogger(logger))
			defer announcer.Destroy()

			session, err := announcer.Publish(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "announcing %s, press Ctrl-C to stop\n",
				session.Service().FQDN())
			<-ctx.Done()

			return announcer.UnpublishAll()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML service description")
	cmd.Flags().StringVar(&eventFile, "event-log", "", "append CBOR announcement events to this file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
