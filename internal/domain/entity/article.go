package entity

// Article is a single headline as returned by a news source. Any field may
// be empty; upstream APIs treat all of them as optional.
type Article struct {
	Title       string
	Source      string
	URL         string
	PublishedAt string
}

func NewArticle(title, source, url, publishedAt string) *Article {
	return &Article{
		Title:       title,
		Source:      source,
		URL:         url,
		PublishedAt: publishedAt,
	}
}

func (a *Article) HasURL() bool {
	return a.URL != ""
}
