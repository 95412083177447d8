package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointAbout       = "/v1/about"
	APIv1EndpointArtistLink  = "/v1/artist/link"
	APIv1EndpointQuiz        = "/v1/quiz"
	APIv1EndpointQuizSession = "/v1/quiz/{sessionID}"
	APIv1EndpointQuizAnswer  = "/v1/quiz/{sessionID}/answers/{question}"
	APIv1EndpointQuizSubmit  = "/v1/quiz/{sessionID}/submit"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods map[string][]string = map[string][]string{
	APIv1EndpointAbout:       {http.MethodGet},
	APIv1EndpointArtistLink:  {http.MethodGet},
	APIv1EndpointQuiz:        {http.MethodPost},
	APIv1EndpointQuizSession: {http.MethodGet, http.MethodDelete},
	APIv1EndpointQuizAnswer:  {http.MethodPut},
	APIv1EndpointQuizSubmit:  {http.MethodPost},
}
