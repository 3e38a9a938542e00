package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/instance-isolator/pkg/server"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Accept finding events over HTTP and isolate the named instances",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file; environment variables override its values")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	r, err := responder.New(cmd.Context(), cfgPath, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		r.Logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Isolator: r.Isolator,
			Logger:   r.Logger,
		},
	})

	return webAPI.Start()
}
