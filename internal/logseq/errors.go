package logseq

import "fmt"

// AuthError means the API rejected the bearer token (HTTP 401). Its message
// is written for the end user: the fix is always configuration.
type AuthError struct {
	Host string
	Port int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(
		"authentication failed (HTTP 401): the Logseq API rejected the request. "+
			"Check that the HTTP APIs server is enabled in Logseq (Settings > Features), "+
			"that LOGSEQ_API_TOKEN matches an authorization token configured there, and "+
			"that LOGSEQ_API_HOST/LOGSEQ_API_PORT point at the running instance (currently %s:%d)",
		e.Host, e.Port)
}

// RemoteError is any other non-2xx response from the API.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("logseq API error (%d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("logseq API error (%d)", e.Status)
}

// NotFoundError reports a page or block that does not exist in the graph.
type NotFoundError struct {
	Kind string // "page" or "block"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
