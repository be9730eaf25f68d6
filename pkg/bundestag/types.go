// Package bundestag fetches plenary protocols from the Bundestag DIP API
// with rate limiting and caching.
package bundestag

// Protocol is one plenary protocol as served by the DIP API.
type Protocol struct {
	// ID is the DIP document ID.
	ID string `json:"id"`

	// DocumentNumber is the official number, e.g. "21/6".
	DocumentNumber string `json:"dokumentnummer"`

	// Date is the session date in ISO format.
	Date string `json:"datum"`

	// Title is the document title.
	Title string `json:"titel"`

	// ElectionPeriod is the legislative period.
	ElectionPeriod int `json:"wahlperiode"`

	// FullText is the complete protocol text. Only populated by the
	// full-text endpoint.
	FullText string `json:"text"`
}

// protocolList is the DIP list envelope.
type protocolList struct {
	Documents []Protocol `json:"documents"`
	Cursor    string     `json:"cursor"`
	NumFound  int        `json:"numFound"`
}
