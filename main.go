package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"boardapp/app/config"
	"boardapp/service"
)

// CliVersion is reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args to a subcommand. serve is the default.
func RealMain() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"serve"}
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "help", "-h", "--help":
		service.PrintHelp()
		exit(0)
	case "version":
		fmt.Printf("boardapp version %s\n", CliVersion)
		exit(0)
	case "serve", "init", "clean", "backup", "restore":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Invalid configuration: %v\n", err)
			exit(1)
			return
		}
		if cmd == "serve" && cfg.UsingDefaultSecret() {
			log.Println("WARNING: BOARD_JWT_SECRET is not set, tokens are signed with the development secret")
		}
		args[0] = cmd
		exit(service.HandleCommand(args, cfg))
	default:
		fmt.Printf("Unknown command: %s\n\n", args[0])
		service.PrintHelp()
		exit(1)
	}
}
