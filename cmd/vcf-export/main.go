// vcf-export dumps a user's personal contact list as a VCF 3.0 file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/config"
	"github.com/roosych/contactsbook/internal/database"
	"github.com/roosych/contactsbook/internal/logger"
	"github.com/roosych/contactsbook/internal/repository"
	"github.com/roosych/contactsbook/internal/service"
)

func main() {
	var (
		userID   = flag.String("user", "", "user ID whose personal list to export")
		username = flag.String("username", "", "account name, alternative to -user")
		out      = flag.String("out", "", "output path; empty writes to stdout")
		timeout  = flag.Duration("timeout", time.Minute, "overall timeout")
	)
	flag.Parse()

	if *userID == "" && *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "vcf-export")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	users := repository.NewUsersRepository(db, log)
	svc := service.New(
		repository.NewContactsRepository(db, log),
		repository.NewBooksRepository(db, log),
		users,
		service.Options{},
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	owner := *userID
	if owner == "" {
		u, err := users.GetUserByUsername(ctx, *username)
		if err != nil {
			log.Fatal("Failed to look up user", zap.Error(err))
		}
		if u == nil {
			log.Fatal("No such user", zap.String("username", *username))
		}
		owner = u.ID
	}

	data, err := svc.ExportPersonal(ctx, owner)
	if err != nil {
		log.Fatal("Export failed", zap.Error(err))
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("Failed to write output file", zap.Error(err))
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(data), *out)
}
