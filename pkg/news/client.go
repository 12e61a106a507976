package news

import "encoding/json"

// Response is the provider payload, passed through to callers untouched.
type Response = json.RawMessage

type NewsQuery struct {
	Query    string
	Category string
	Country  string
	Language string
	Limit    int
}

type HeadlineQuery struct {
	Category string
	Country  string
	Limit    int
}

type SearchOptions struct {
	Country  string
	Language string
	Limit    int
}

type Provider interface {
	FetchNews(params NewsQuery) (Response, error)
	FetchHeadlines(params HeadlineQuery) (Response, error)
	SearchByTopic(topic string, opts SearchOptions) (Response, error)
	Ping() error
	Name() string
}
