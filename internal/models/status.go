package models

// StatusReport is the line-service status scraped from the operator page.
type StatusReport struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
