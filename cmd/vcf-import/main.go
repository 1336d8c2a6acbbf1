// vcf-import loads a VCF file into a user's personal list or into a
// shared contact book, running the same import pipeline the web layer
// uses. Intended for bulk seeding and operator recovery.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/cache"
	"github.com/roosych/contactsbook/internal/config"
	"github.com/roosych/contactsbook/internal/database"
	"github.com/roosych/contactsbook/internal/logger"
	"github.com/roosych/contactsbook/internal/models"
	"github.com/roosych/contactsbook/internal/repository"
	"github.com/roosych/contactsbook/internal/service"
)

func main() {
	var (
		file     = flag.String("file", "", "path to the VCF file (required)")
		userID   = flag.String("user", "", "owner user ID")
		username = flag.String("username", "", "owner account name, alternative to -user")
		bookID   = flag.String("book", "", "target contact book ID; empty imports into the personal list")
		publish  = flag.Bool("publish", false, "publish the import event to the redis stream")
		timeout  = flag.Duration("timeout", 5*time.Minute, "overall timeout")
	)
	flag.Parse()

	if *file == "" || (*userID == "" && *username == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "vcf-import")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read VCF file", zap.Error(err))
	}
	if int64(len(data)) > cfg.Import.MaxFileSize {
		log.Fatal("VCF file exceeds the size limit",
			zap.Int("size", len(data)),
			zap.Int64("limit", cfg.Import.MaxFileSize))
	}

	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	opts := service.Options{}
	if *publish {
		rdb := cache.NewRedisClient(&cfg.Redis)
		defer rdb.Close()
		opts.Events = cache.NewStreamPublisher(rdb, cfg.Import.EventStream)
	}

	users := repository.NewUsersRepository(db, log)
	svc := service.New(
		repository.NewContactsRepository(db, log),
		repository.NewBooksRepository(db, log),
		users,
		opts,
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

	scope := models.PersonalScope(owner)
	if *bookID != "" {
		scope = models.GroupScope(*bookID)
	}

	processed, err := svc.Import(ctx, data, owner, scope)
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	fmt.Printf("Processed %d contacts into %s\n", processed, scope.String())
}
