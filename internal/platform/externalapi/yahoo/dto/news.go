package dto

// NewsRequest is the body of the news stream (ncp) request.
type NewsRequest struct {
	ServiceConfig struct {
		SnippetCount int      `json:"snippetCount"`
		Symbols      []string `json:"s"`
	} `json:"serviceConfig"`
}

// NewsResponse represents the JSON response from the news stream endpoint.
// Stream items without content are ads and are ignored.
type NewsResponse struct {
	Data struct {
		TickerStream struct {
			Stream []struct {
				Content *NewsContent `json:"content"`
			} `json:"stream"`
		} `json:"tickerStream"`
	} `json:"data"`
}

// NewsContent is a single article of the stream.
type NewsContent struct {
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	PubDate      string `json:"pubDate"`
	CanonicalURL struct {
		URL string `json:"url"`
	} `json:"canonicalUrl"`
}
