package cmd

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sudsolve",
	Short: "Solve 9x9 Sudoku puzzles by candidate elimination",
	Long: `sudsolve applies naked-single and hidden-single deductions until a
puzzle is complete or no further progress is possible. Puzzles needing
deeper techniques are reported as not solved rather than guessed at.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().String("data-dir", "./data", "puzzle save directory")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

// initConfig wires environment configuration: a local .env if present,
// then SUDSOLVE_* variables override flag defaults.
func initConfig() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("SUDSOLVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
