package main

import (
	"errors"
	"fmt"
	"strings"

	"gamelink-finder/internal/adapters/output/database"
	"gamelink-finder/internal/adapters/output/googlesearch"
	"gamelink-finder/internal/application"
	"gamelink-finder/internal/domain"
	"gamelink-finder/pkg/database_driver/gorm"
	protocol "gamelink-finder/protocal"

	"github.com/spf13/cobra"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var (
		store string
		exact bool
	)

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Run one link search the way the bot does and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := domain.ParseStore(store)
			if !ok {
				return fmt.Errorf("unknown store %q, use any, steam, gog or epic", store)
			}
			conf := flags.load()
			query := domain.NewSearchQuery(strings.Join(args, " ")).NormalizedText

			gameName := query
			if !exact {
				db, err := protocol.OpenCatalog(conf)
				if err != nil {
					return err
				}
				defer gorm.Disconnect(db.Catalog)

				titles, err := database.NewCatalogRepository(db.Catalog).ListTitles(cmd.Context())
				if err != nil {
					return err
				}
				match, err := application.MatchTitle(query, titles)
				if err != nil {
					if errors.Is(err, domain.ErrNoMatch) {
						return fmt.Errorf("%w: best was %q at %d", err, match.BestMatch, match.Confidence)
					}
					return err
				}
				gameName = match.BestMatch
				fmt.Fprintf(cmd.OutOrStdout(), "Matched %q (score %d)\n", match.BestMatch, match.Confidence)
			}

			client, err := googlesearch.NewSearchClientAdapter(conf.Search)
			if err != nil {
				return err
			}
			executor := application.NewSearchExecutor(client, application.SearchPolicyFromConfig(conf.Search))
			result, err := executor.Execute(cmd.Context(), gameName, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), application.RenderSearchResult(result))
			return nil
		},
	}
	cmd.Flags().StringVar(&store, "store", "any", "store filter: any, steam, gog or epic")
	cmd.Flags().BoolVar(&exact, "exact", false, "search the title as typed, without catalog matching")
	return cmd
}
