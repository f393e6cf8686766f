package cli

import (
	"textsteg/internal/server"

	"github.com/spf13/cobra"
)

func ServeAppCommand(rOpts *rootOpts) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to hide and reveal text in images over the web",
		Example: "textsteg serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = rOpts.fileConfig.ServerPort()
			}
			encodeConfig, err := rOpts.fileConfig.EncodeConfig()
			if err != nil {
				return err
			}
			return server.StartServer(port, encodeConfig)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
