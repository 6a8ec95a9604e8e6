package entity

// Per-article failure reasons surfaced in the API response.
const (
	ReasonNoURL         = "No URL available for article."
	ReasonExtractFailed = "Could not extract article content."
	ReasonSummaryFailed = "Could not generate summary."
)

// SummaryRecord combines article metadata with either a generated summary or
// a failure reason. Once processing completes, exactly one of Summary and
// Error is set.
type SummaryRecord struct {
	Title     string  `json:"title"`
	Source    string  `json:"source"`
	URL       string  `json:"url"`
	Published string  `json:"published"`
	Summary   *string `json:"summary"`
	Error     *string `json:"error"`
}

func NewSummaryRecord(article *Article) *SummaryRecord {
	return &SummaryRecord{
		Title:     article.Title,
		Source:    article.Source,
		URL:       article.URL,
		Published: article.PublishedAt,
	}
}

func (r *SummaryRecord) SetSummary(summary string) {
	r.Summary = &summary
	r.Error = nil
}

func (r *SummaryRecord) SetError(reason string) {
	r.Error = &reason
	r.Summary = nil
}

// Completed reports whether the record carries exactly one outcome.
func (r *SummaryRecord) Completed() bool {
	return (r.Summary != nil) != (r.Error != nil)
}
