package llm

type SummaryInput struct {
	Text      string
	Sentences int
}

type SummaryResult struct {
	Summary   string
	ModelUsed string
}

type SummaryClient interface {
	Summarize(input SummaryInput) (*SummaryResult, error)
}
