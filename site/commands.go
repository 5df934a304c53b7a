package site

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minisite/app/config"
	"minisite/app/models"
	"minisite/app/repositories"
	"minisite/app/routes"
)

var osExit = os.Exit

// shutdownTimeout bounds how long Serve waits for in-flight requests
// after an interrupt.
const shutdownTimeout = 30 * time.Second

// Serve runs the web server until it fails or receives SIGINT/SIGTERM,
// then shuts down gracefully.
func Serve() {
	cfg := config.Load()
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.MediaDir, 0755); err != nil {
		log.Fatal().Err(err).Str("path", cfg.MediaDir).Msg("failed to create media directory")
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: routes.Setup(db, &cfg),
	}

	errChannel := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChannel <- err
		}
	}()
	go listenToInterrupt(errChannel)

	log.Info().Err(<-errChannel).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func listenToInterrupt(errChannel chan error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// Init initializes a new empty database.
func Init() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// Clean removes the database after confirmation.
func Clean() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return
	}
	fmt.Println("Database cleaned successfully")
}

// Backup creates a backup of the database next to it, under backups/.
func Backup() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(cfg.DBPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// Restore restores the database from a backup file and returns an exit code.
func Restore(backupFile string) int {
	cfg := config.Load()

	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return 1
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		fmt.Printf("Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	loadErr := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic occurred during restore: %v", r)
			}
		}()
		return db.Load(f, 4)
	}()
	if loadErr != nil {
		fmt.Printf("Failed to restore database: %v\n", loadErr)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}

// Seed fills an empty database with starter content so every page has
// something to show. Groups that already hold records are left alone.
func Seed() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		osExit(1)
		return
	}
	defer db.Close()

	if err := seedData(db); err != nil {
		fmt.Printf("Failed to seed database: %v\n", err)
		osExit(1)
		return
	}
	fmt.Println("Database seeded successfully")
}

func seedData(db *badger.DB) error {
	topics := repositories.NewBadgerTopicRepository(db)
	existing, err := topics.List()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, name := range []string{"Website", "Products", "Support"} {
			if err := topics.Create(&models.Topic{Name: name}); err != nil {
				return err
			}
		}
	}

	directors := repositories.NewBadgerDirectorRepository(db)
	existingDirectors, err := directors.List()
	if err != nil {
		return err
	}
	if len(existingDirectors) == 0 {
		for _, name := range []string{"Akira Kurosawa", "Stanley Kubrick", "Sofia Coppola", "Greta Gerwig"} {
			if err := directors.Create(&models.Director{Name: name}); err != nil {
				return err
			}
		}
	}

	genres := repositories.NewBadgerGenreRepository(db)
	existingGenres, err := genres.List()
	if err != nil {
		return err
	}
	if len(existingGenres) == 0 {
		for _, name := range []string{"Drama", "Comedy", "Science Fiction", "Documentary"} {
			if err := genres.Create(&models.Genre{Name: name}); err != nil {
				return err
			}
		}
	}

	entries := repositories.NewBadgerEntryRepository(db)
	existingEntries, err := entries.List()
	if err != nil {
		return err
	}
	if len(existingEntries) == 0 {
		starters := []*models.Entry{
			{Word: "gopher", Definition: "A burrowing rodent, or a person who runs errands."},
			{Word: "petrichor", Definition: "The pleasant smell of earth after rain."},
			{Word: "serendipity", Definition: "Finding something good without looking for it."},
		}
		for _, entry := range starters {
			if err := entries.Create(entry); err != nil {
				return err
			}
		}
	}

	return nil
}

// GenKey generates a fresh secret key. With --save it is written to .env,
// otherwise it is printed for the operator to store.
func GenKey(args []string) {
	fs := flag.NewFlagSet("genkey", flag.ExitOnError)
	save := fs.Bool("save", false, "write the key to .env instead of printing it")
	fs.Parse(args)

	key := hex.EncodeToString(config.RandomSecretKey())
	if !*save {
		fmt.Printf("MINISITE_SECRET_KEY=%s\n", key)
		return
	}

	if err := writeEnvKey(".env", key); err != nil {
		fmt.Printf("Failed to update .env: %v\n", err)
		osExit(1)
		return
	}
	fmt.Println("Secret key saved to .env")
}

// writeEnvKey replaces the MINISITE_SECRET_KEY line in the env file at
// path, appending one if the file has none.
func writeEnvKey(path, key string) error {
	line := "MINISITE_SECRET_KEY=" + key

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return os.WriteFile(path, []byte(line+"\n"), 0600)
	}
	if err != nil {
		return err
	}

	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return os.WriteFile(path, []byte(line+"\n"), 0600)
	}

	lines := strings.Split(content, "\n")
	replaced := false
	for i, existing := range lines {
		if strings.HasPrefix(existing, "MINISITE_SECRET_KEY=") {
			lines[i] = line
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, line)
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600)
}
