package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"resepnusantara/internal/app"
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/config"
	"resepnusantara/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	driver     string

	session *client.Session
)

var rootCmd = &cobra.Command{
	Use:   "resep",
	Short: "Resep Nusantara - каталог рецептов с избранным, отзывами и профилем",
	Long: `Resep Nusantara - локальный каталог индонезийских рецептов.

Избранное, отзывы и профиль хранятся в локальном хранилище
(sqlite по умолчанию; также memory, bbolt, postgres, redis).`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	closeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := "warn"
	if debug {
		level = "debug"
	}
	log := logger.WithLevel(cfg.Env, level)

	session = &client.Session{
		App: app.New(cmd.Context(), cfg, log),
		Out: client.NewPrinter(cmd.OutOrStdout(), jsonOutput),
	}
	cmd.SetContext(client.WithSession(cmd.Context(), session))
	return nil
}

// closeApp закрывает хранилище после команды, в том числе завершившейся ошибкой
func closeApp() {
	if session == nil {
		return
	}
	if err := session.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка закрытия хранилища: %v\n", err)
	}
	session = nil
}

func loadConfig() (*config.Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Join(home, ".resep-nusantara"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if driver != "" {
		v.Set("storage_driver", driver)
	}

	return config.Load(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный вывод")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "хранилище: memory, sqlite, bbolt, postgres, redis")
}
