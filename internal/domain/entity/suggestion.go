package entity

type Suggestion struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}
