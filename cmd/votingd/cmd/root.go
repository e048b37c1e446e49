package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/app"
	"github.com/MuhKar1/Voting-dApp/config"
	"github.com/MuhKar1/Voting-dApp/log"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "votingd",
	Short: "Run the voting program with its event indexer",
	Long: `votingd hosts the on-chain style voting program, derives record
addresses for polls and vote receipts, and indexes emitted events into a
relational store for querying.`,
	RunE: runNode,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, config.FlagConfigPath, "", "config file (default is $HOME/.votingd.json)")
	rootCmd.PersistentFlags().String(config.FlagVerbosity, "", "logging verbosity: debug, info, warn, error")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig locates the config file if none was given on the command line.
func initConfig() {
	if cfgFile != "" {
		return
	}

	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfgFile = filepath.Join(home, ".votingd.json")

	viper.AutomaticEnv() // read in environment variables that match
}

func runNode(cmd *cobra.Command, args []string) error {
	cfg := config.ParseConfigFromFile(cfgFile)

	if verbosity := viper.GetString(config.FlagVerbosity); verbosity != "" {
		cfg.LogConfig.Level = verbosity
	}
	if err := log.SetVerbosity(cfg.LogConfig.Level); err != nil {
		return err
	}

	node := app.NewApp(cfg)
	go node.Start()
	log.Info("votingd started", zap.String("config", cfgFile))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	node.Stop()

	return nil
}
