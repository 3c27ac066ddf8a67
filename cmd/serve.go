package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/YashVerma-code/OS-Assignment/api"
)

var (
	serveAddr       string
	serveMaxHorizon int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation HTTP API",
	Long:  "Serve GET /api/v1/policies, POST /api/v1/simulate/:policy and POST /api/v1/compare. Each request runs on a fresh simulator.",
	Run: func(cmd *cobra.Command, args []string) {
		defaults := setupDefaults(cmd)
		addr := defaults.ServerAddr()
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		maxHorizon := defaults.Server.MaxHorizon
		if cmd.Flags().Changed("max-horizon") {
			maxHorizon = serveMaxHorizon
		}

		app := api.NewApp(api.NewSchedulerHandlerImpl(resolveConfig(cmd, defaults, nil), maxHorizon))

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			logrus.Info("Shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.Errorf("Shutdown failed: %v", err)
			}
		}()

		logrus.Infof("Listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	addSimulationFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", defaultServerAddr, "Listen address")
	serveCmd.Flags().Int64Var(&serveMaxHorizon, "max-horizon", api.DefaultMaxHorizon, "Upper bound on the simulated ticks of any request")

	rootCmd.AddCommand(serveCmd)
}
