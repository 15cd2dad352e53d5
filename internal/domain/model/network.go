package model

// PaperNode is a paper in the citation graph. Topic and ImpactScore are only
// filled for the enhanced variant.
type PaperNode struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PublishYear   int      `json:"publish_year"`
	CitationCount int      `json:"citation_count"`
	Institution   string   `json:"institution"`
	Topic         string   `json:"topic,omitempty"`
	ImpactScore   *float64 `json:"impact_score,omitempty"`
}

// CitationLink points from the cited paper (Source) to the citing paper (Target).
type CitationLink struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Value      int    `json:"value"`
	CitingYear int    `json:"citing_year"`
	CitedYear  int    `json:"cited_year"`
	YearDiff   int    `json:"year_diff"`
}

// CitationNetwork is the payload of the citation network endpoints.
type CitationNetwork struct {
	Error string         `json:"error,omitempty"`
	Nodes []PaperNode    `json:"nodes"`
	Links []CitationLink `json:"links"`
}

// AuthorNode is an author in the collaboration graph.
type AuthorNode struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Department        string `json:"department"`
	PapersPublished   int    `json:"papers_published"`
	FirstAuthorPapers int    `json:"first_author_papers"`
	CorrAuthorPapers  int    `json:"corr_author_papers"`
	HIndex            int    `json:"h_index"`
}

// CollaborationLink joins two authors who wrote papers together.
type CollaborationLink struct {
	Source           string `json:"source"`
	Target           string `json:"target"`
	Value            int    `json:"value"`
	CoAuthoredPapers int    `json:"co_authored_papers"`
}

// CollaborationNetwork is the payload of the collaboration network endpoint.
type CollaborationNetwork struct {
	Error string              `json:"error,omitempty"`
	Nodes []AuthorNode        `json:"nodes"`
	Links []CollaborationLink `json:"links"`
}
