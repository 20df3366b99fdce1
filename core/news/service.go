package news

import (
	"context"

	"github.com/mmcdole/gofeed"

	"github.com/dineshpandey3618-web/Rank1/core"
)

// maxItems caps the headlines shown on the News tab.
const maxItems = 5

type Headline struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Service fetches the configured feed on demand. No caching; every News view
// re-fetches.
type Service struct {
	feedURL string
	parser  *gofeed.Parser
	logger  core.Logger
}

func NewService(conf *core.Config, logger core.Logger) *Service {
	return &Service{
		feedURL: conf.NewsFeedURL,
		parser:  gofeed.NewParser(),
		logger:  logger,
	}
}

// Fetch returns up to 5 headlines. Any failure degrades to an empty listing;
// the News tab shows "unavailable" instead of an error.
func (svc *Service) Fetch(ctx context.Context) []Headline {
	feed, err := svc.parser.ParseURLWithContext(svc.feedURL, ctx)
	if err != nil {
		svc.logger.Warn("news: fetching feed", err)
		return nil
	}

	items := feed.Items
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	headlines := make([]Headline, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, Headline{Title: item.Title, Link: item.Link})
	}
	return headlines
}
