package session

import "strings"

// State is the resolution state of the session for one page load.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Resolve moves Unknown to Authenticated or Anonymous. Resolved states are final for the page load.
func (s State) Resolve(authenticated bool) State {
	if s != StateUnknown {
		return s
	}
	if authenticated {
		return StateAuthenticated
	}
	return StateAnonymous
}

const (
	PageIndex    = "index.html"
	PageHistory  = "historico.html"
	PageLogin    = "login.html"
	PageRegister = "register.html"
)

// Action tells the page server what to do with a navigation.
type Action int

const (
	ActionRender Action = iota
	ActionRedirect
	ActionHold
)

// Decision is the outcome of the route guard.
type Decision struct {
	Action Action
	Target string
}

// NormalizePage maps a request path to a page name. The root path is the default page.
func NormalizePage(path string) string {
	page := strings.TrimPrefix(path, "/")
	if page == "" {
		return PageIndex
	}
	return page
}

// IsAuthPage reports whether page is one of the login or register pages.
func IsAuthPage(page string) bool {
	return page == PageLogin || page == PageRegister
}

// Decide applies the route guard to a navigation towards page.
func Decide(state State, page string) Decision {
	page = NormalizePage(page)
	switch state {
	case StateUnknown:
		return Decision{Action: ActionHold}
	case StateAnonymous:
		if !IsAuthPage(page) {
			return Decision{Action: ActionRedirect, Target: PageLogin}
		}
	case StateAuthenticated:
		if IsAuthPage(page) {
			return Decision{Action: ActionRedirect, Target: PageIndex}
		}
	}
	return Decision{Action: ActionRender, Target: page}
}
