package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookmate-app/bookmate/config"
	"github.com/bookmate-app/bookmate/log"
	"github.com/bookmate-app/bookmate/model"
	"github.com/bookmate-app/bookmate/server"
	"github.com/bookmate-app/bookmate/store"
	"github.com/bookmate-app/bookmate/store/db"
	"github.com/bookmate-app/bookmate/version"
	"github.com/bookmate-app/bookmate/worker"
)

const (
	greetingBanner = `
██████   ██████   ██████  ██   ██ ███    ███  █████  ████████ ███████
██   ██ ██    ██ ██    ██ ██  ██  ████  ████ ██   ██    ██    ██
██████  ██    ██ ██    ██ █████   ██ ████ ██ ███████    ██    █████
██   ██ ██    ██ ██    ██ ██  ██  ██  ██  ██ ██   ██    ██    ██
██████   ██████   ██████  ██   ██ ██      ██ ██   ██    ██    ███████
`

	defaultAdminEmail    = "admin@bookmate.com"
	defaultAdminPassword = "admin123"
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:   "bookmate",
		Short: "BookMate is a book catalog and reading list server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			database, err := db.NewDB(config.Opts.DSN)
			if err != nil {
				log.Error("Error connecting to database", zap.Error(err))
				return
			}
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				log.Error("Error migrating database", zap.Error(err))
				return
			}

			s := store.NewStore(database.DB)
			if err := s.Ping(); err != nil {
				log.Error("Error pinging database", zap.Error(err))
				return
			}

			if err := seedAdminUser(s); err != nil {
				log.Error("Error seeding admin user", zap.Error(err))
				return
			}

			statsPool := worker.NewStatsPool(s, config.Opts.WorkerPoolSize)

			fmt.Print(greetingBanner)
			fmt.Printf("Version %s has been started on port %d\n", version.GetCurrentVersion(), config.Opts.Port)

			httpServer, err := server.StartServer(ctx, s, statsPool)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			log.Info("Shutting down")
			server.Shutdown(httpServer)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("host", "0.0.0.0", "host to listen on")
	rootCmd.PersistentFlags().Int("port", 8080, "port to listen on")
	rootCmd.PersistentFlags().String("data", "/var/opt/bookmate", "data directory")

	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	cobra.OnInitialize(func() {
		if _, err := config.GetConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if configFile != "" {
			if _, err := config.ParseFile(configFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
				os.Exit(1)
			}
		}
		if err := viper.Unmarshal(config.Opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying flags: %v\n", err)
			os.Exit(1)
		}
		log.Logger = log.NewLogger()
	})
}

// seedAdminUser creates the default admin account on an empty database so
// the catalog can be managed right after first start.
func seedAdminUser(s *store.Store) error {
	adminRole := model.RoleAdmin
	existing, err := s.GetUser(&model.FindUser{Role: &adminRole})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(&model.User{
		Nickname:     "Admin",
		Email:        defaultAdminEmail,
		PasswordHash: string(passwordHash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Info("Default admin account created", zap.String("email", defaultAdminEmail))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Logger.Sync()
}
