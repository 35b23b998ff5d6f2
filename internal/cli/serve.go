package cli

import (
	"bmpsteg/internal/server"
	"bmpsteg/pkg/config"

	"github.com/spf13/cobra"
)

func ServeAppCommand(opts *rootOpts) *cobra.Command {
	var (
		port       string
		configPath string
	)

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "bmpsteg serve --port 8888 --config server.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sConfig, err := serverConfigFromFlags(cmd, configPath, port, opts)
			if err != nil {
				return err
			}
			return server.StartServer(sConfig)
		},
	}

	command.Flags().StringVar(&port, "port", config.DefaultPort, "Port on which to start the server")
	command.Flags().StringVar(&configPath, "config", "", "YAML file with the server configuration")

	return command
}

// serverConfigFromFlags loads the config file and applies the flags the user set explicitly on top of it
func serverConfigFromFlags(cmd *cobra.Command, configPath, port string, opts *rootOpts) (config.ServerConfig, error) {
	sConfig, err := config.LoadServerConfig(configPath)
	if err != nil {
		return sConfig, err
	}
	if cmd.Flags().Changed("port") {
		sConfig.Port = port
	}
	if opts.requireUncompressed {
		sConfig.RequireUncompressed = true
	}
	return sConfig, nil
}
