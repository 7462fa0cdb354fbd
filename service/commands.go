package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"boardapp/app/config"
	"boardapp/app/repositories"
)

// HandleCommand runs a database or server subcommand and returns an exit code.
func HandleCommand(args []string, cfg *config.Config) int {
	if len(args) < 1 {
		PrintHelp()
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		if err := RunAppServer(cfg); err != nil {
			fmt.Printf("Server error: %v\n", err)
			return 1
		}
		return 0
	case "clean":
		clean(cfg.DBPath)
		return 0
	case "init":
		initDb(cfg.DBPath)
		return 0
	case "backup":
		if _, err := backup(cfg.DBPath); err != nil {
			return 1
		}
		return 0
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		return restore(cfg.DBPath, args[1])
	case "help":
		PrintHelp()
		return 0
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		PrintHelp()
		return 1
	}
}

// PrintHelp prints the list of subcommands.
func PrintHelp() {
	helpText := `Usage: boardapp <command> [options]

Commands:
  serve              Run the discussion board API (default)
  clean              Delete the database
  init               Initialize a new empty database
  backup             Create a backup of the database
  restore <file>     Restore database from backup
  version            Print the version
  help               Display this help message

Environment:
  PORT, BOARD_DB_PATH, BOARD_UPLOAD_DIR, BOARD_JWT_SECRET,
  BOARD_TOKEN_TTL, BOARD_BCRYPT_COST, BOARD_MAX_UPLOAD_SIZE
`
	fmt.Println(helpText)
}

// clean removes the database.
func clean(dbPath string) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	if !confirm("Are you sure you want to clean the database? This cannot be undone. [y/N] ") {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database.
func initDb(dbPath string) {
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	db, err := repositories.Open(dbPath)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// backupDir keeps backups next to the database directory.
func backupDir(dbPath string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(dbPath)), "backups")
}

// backup writes a full backup of the database and returns its path.
func backup(dbPath string) (string, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return "", err
	}

	dir := backupDir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return "", err
	}

	db, err := repositories.Open(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return "", err
	}
	defer db.Close()

	backupFile := filepath.Join(dir, fmt.Sprintf("backup_%d.db", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return "", err
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return "", err
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return backupFile, nil
}

// restore replaces the database with the contents of backupFile.
func restore(dbPath, backupFile string) int {
	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if err != nil {
		fmt.Printf("Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	if _, err := os.Stat(dbPath); err == nil {
		if !confirm("Existing database found. Do you want to replace it? [y/N] ") {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	db, err := repositories.Open(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic occurred during restore: %v", r)
			}
		}()
		return db.Load(f, 16)
	}()
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}
