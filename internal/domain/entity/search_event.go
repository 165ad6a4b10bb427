package entity

type SearchEvent struct {
	ID         string `json:"id"`
	SessionID  string `json:"sessionId"`
	City       string `json:"city"`
	Country    string `json:"country"`
	SearchedAt string `json:"searchedAt"`
}
