package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saijayin/agenda/internal/config"
	"github.com/saijayin/agenda/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	srv := web.NewServer(web.NewService(st))
	fmt.Printf("Serving on http://%s\n", addr)
	return srv.Run(addr)
}
