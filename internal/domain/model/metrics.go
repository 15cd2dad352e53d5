package model

// PaperCount is the number of papers published in a given year.
type PaperCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// PatentCitation pairs a patent citation bucket with the number of papers in it.
type PatentCitation struct {
	PatentCount int `json:"patentCount"`
	PaperCount  int `json:"paperCount"`
}
