package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"library-system/pkg/config"
	"library-system/pkg/database"
	"library-system/pkg/dto"
	"library-system/pkg/models"
	"library-system/pkg/repository"
	"library-system/pkg/service"
)

var (
	cfg    = config.Load()
	logger = newLogger(cfg.LogLevel)

	db      *gorm.DB
	books   *service.BookService
	members *service.MemberService
	loans   *service.LoanService
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Library system REST API over books, members and loans",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&cfg.DB.Driver, "db-driver", cfg.DB.Driver, "database driver: postgres or sqlite")
	root.PersistentFlags().StringVar(&cfg.DB.Path, "db-path", cfg.DB.Path, "sqlite database file")
	root.PersistentFlags().StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP listen port")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate, seed and start the HTTP API (default)",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the sample catalogue",
			RunE:  runSeed,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger.Info("starting library service", "port", cfg.Server.Port, "db", cfg.DB.Target())
	if err := connect(); err != nil {
		return fail(err)
	}
	if err := database.Migrate(db); err != nil {
		return fail(err)
	}
	seedTestData(cmd.Context())

	return fail(serve(newRouter()))
}

func runMigrate(*cobra.Command, []string) error {
	if err := connect(); err != nil {
		return fail(err)
	}
	if err := database.Migrate(db); err != nil {
		return fail(err)
	}
	logger.Info("database migrated", "db", cfg.DB.Target())
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if err := connect(); err != nil {
		return fail(err)
	}
	if err := database.Migrate(db); err != nil {
		return fail(err)
	}
	seedTestData(cmd.Context())
	return nil
}

func connect() error {
	conn, err := database.Open(cfg.DB, logger)
	if err != nil {
		return err
	}
	return wire(conn)
}

// wire builds the services over conn and registers the custom binding rules.
func wire(conn *gorm.DB) error {
	db = conn
	books = service.NewBookService(repository.New[models.Book](conn, repository.WithLogger(logger)))
	members = service.NewMemberService(repository.New[models.Member](conn, repository.WithLogger(logger)))
	loans = service.NewLoanService(repository.New[models.Loan](conn, repository.WithLogger(logger)))

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidations(v)
}

func fail(err error) error {
	if err != nil {
		logger.Error("library service failed", "error", err)
	}
	return err
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
