package main

import (
	"flag"
	"log"

	"github.com/danmuck/irdecode/internal/config"
)

func main() {
	kind := flag.String("kind", "service", "config kind: service|cli")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing service config file")
	input := flag.String("input", "", "config path for validation (defaults to cmd/irdecoded/config.toml)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = "cmd/irdecoded/config.toml"
		}
		if *kind != "service" {
			log.Fatalf("validation supports kind=service only, got %s", *kind)
		}
		if _, err := config.LoadServiceConfig(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		switch *kind {
		case "service":
			target = "cmd/irdecoded/config.toml"
		case "cli":
			target = "cmd/irdecode/config.toml"
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
