package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-cli/wheelhouse/config"
	"github.com/wheelhouse-cli/wheelhouse/display"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Config shows or updates wheelhouse defaults",
	Example: `wheelhouse config
  wheelhouse config --store-dir /srv/artifacts`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.LoadFromFile()
		if err != nil {
			display.FatalErr(err)
		}

		if configStoreDirFlag != "" {
			cfg.StoreDir = configStoreDirFlag
			if err := cfg.Save(); err != nil {
				display.FatalErr(err)
			}
			display.Success("config saved to " + config.DefaultConfigFilePath)
		}

		fmt.Println("store_dir:", cfg.StoreDir)
		fmt.Println("manifest_path:", cfg.ManifestPath)
		fmt.Println("dist_dir:", cfg.DistDir)
	},
}

var configStoreDirFlag string

func init() {
	configCmd.Flags().StringVar(&configStoreDirFlag, "store-dir", "", "persist a new artifact store directory")
	rootCmd.AddCommand(configCmd)
}
