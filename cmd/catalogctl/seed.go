package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gamelink-finder/internal/adapters/output/database"
	"gamelink-finder/internal/application"
	"gamelink-finder/internal/domain"
	"gamelink-finder/pkg/database_driver/gorm"
	"gamelink-finder/pkg/validator"
	protocol "gamelink-finder/protocal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by the seed command
type seedFile struct {
	Games []seedGame `yaml:"games"`
}

type seedGame struct {
	Name  string `yaml:"name"`
	Genre string `yaml:"genre"`
	Steam string `yaml:"steam"`
	GOG   string `yaml:"gog"`
	Epic  string `yaml:"epic"`
}

func newSeedCmd(flags *globalFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Import games from a YAML file, skipping titles already in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			requests, err := loadSeed(f)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d games parsed\n", len(requests))
				return nil
			}

			db, err := protocol.OpenCatalog(flags.load())
			if err != nil {
				return err
			}
			defer gorm.Disconnect(db.Catalog)

			srv := application.NewCatalogService(database.NewCatalogRepository(db.Catalog), validator.New())
			titles, err := srv.ListTitles(cmd.Context())
			if err != nil {
				return err
			}
			known := make(map[string]bool, len(titles))
			for _, t := range titles {
				known[strings.ToLower(t)] = true
			}

			added, skipped := 0, 0
			for _, req := range requests {
				if known[strings.ToLower(req.Name)] {
					skipped++
					continue
				}
				if _, err := srv.AddGame(cmd.Context(), req); err != nil {
					logrus.Errorf("Failed to add %q: %v", req.Name, err)
					skipped++
					continue
				}
				known[strings.ToLower(req.Name)] = true
				added++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d skipped\n", added, skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the file without writing")
	return cmd
}

// loadSeed parses a seed file into catalog requests
func loadSeed(r io.Reader) ([]domain.GameRequest, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	requests := make([]domain.GameRequest, 0, len(file.Games))
	for i, g := range file.Games {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("game %d has no name", i+1)
		}
		requests = append(requests, domain.GameRequest{
			Name:      g.Name,
			Genre:     g.Genre,
			SteamLink: optional(g.Steam),
			GOGLink:   optional(g.GOG),
			EpicLink:  optional(g.Epic),
		})
	}
	return requests, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
