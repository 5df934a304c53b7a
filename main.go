package main

import (
	"fmt"
	"os"
	"strings"

	"minisite/site"
)

const cliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the CLI command. It is split from main so tests can
// run it with a stubbed exit.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("minisite version %s\n", cliVersion)
	case "serve":
		site.Serve()
	case "init":
		site.Init()
	case "seed":
		site.Seed()
	case "clean":
		site.Clean()
	case "backup":
		site.Backup()
	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("Error: backup file path required for restore")
			exit(1)
			return
		}
		if code := site.Restore(os.Args[2]); code != 0 {
			exit(code)
		}
	case "genkey":
		site.GenKey(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: minisite <command> [options]
Commands:
  help                Display this help message.
  version             Show version information.
  serve               Run the web server.
  init                Initialize a new empty database.
  seed                Fill an empty database with starter content.
  clean               Remove the database.
  backup              Create a backup of the database.
  restore <file>      Restore the database from a backup.
  genkey [--save]     Generate a secret key, optionally writing it to .env.
`
	fmt.Println(helpText)
}
