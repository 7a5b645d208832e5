package application

import (
	"fmt"
	"strings"

	"gamelink-finder/internal/domain"
)

// RenderSearchResult formats a search result: the flat link list followed by one
// section per store that holds links
func RenderSearchResult(result *domain.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Purchase links for %s:\n\n", result.GameName)
	for i, link := range result.Links {
		fmt.Fprintf(&b, "%d. %s\n", i+1, link)
	}
	writeStoreSections(&b, result.Buckets)
	return strings.TrimRight(b.String(), "\n")
}

// RenderGameLinks formats the curated links of a catalog entry
func RenderGameLinks(game *domain.Game) string {
	bucket := game.StoreLinks()
	if bucket.IsEmpty() {
		return fmt.Sprintf("No store links are known for %s.", game.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Purchase links for %s:\n", game.Name)
	writeStoreSections(&b, bucket)
	return strings.TrimRight(b.String(), "\n")
}

func writeStoreSections(b *strings.Builder, bucket domain.StoreLinkBucket) {
	for _, store := range domain.Stores {
		links := bucket.Links(store)
		if len(links) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s:\n", store.DisplayName())
		for _, link := range links {
			b.WriteString(link)
			b.WriteByte('\n')
		}
	}
}
