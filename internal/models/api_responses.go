package models

// WordListResponse is the listing of a word list.
type WordListResponse struct {
	Total int    `json:"total"`
	Words []Word `json:"words"`
}

// CheckRequest is a dry-run scan request.
type CheckRequest struct {
	Content string   `json:"content"`
	Embeds  []string `json:"embeds"`
}

// CheckResponse is the result of a dry-run scan.
type CheckResponse struct {
	Matched    bool   `json:"matched"`
	Keyword    string `json:"keyword,omitempty"`
	Token      string `json:"token,omitempty"`
	Source     string `json:"source,omitempty"`
	SourceText string `json:"source_text,omitempty"`
	EmbedIndex *int   `json:"embed_index,omitempty"`
	Threshold  int    `json:"threshold"`
}
