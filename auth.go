package twitter

import "net/http"

// Authorizer attaches credentials to an outgoing request.
type Authorizer interface {
	Authorize(req *http.Request) error
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(req *http.Request) error

func (f AuthorizerFunc) Authorize(req *http.Request) error {
	return f(req)
}

// BearerToken sends an application-only bearer token.
type BearerToken string

func (t BearerToken) Authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+string(t))
	return nil
}

// HeaderAuthorizer copies a fixed set of headers onto every request, e.g. a
// session cookie together with its X-Csrf-Token.
type HeaderAuthorizer map[string]string

func (h HeaderAuthorizer) Authorize(req *http.Request) error {
	for k, v := range h {
		req.Header.Set(k, v)
	}
	return nil
}

type noAuthorizer struct{}

func (noAuthorizer) Authorize(*http.Request) error { return nil }

func authorizerFromConfig(cfg *Config) Authorizer {
	var chain []Authorizer
	if len(cfg.Headers) > 0 {
		chain = append(chain, HeaderAuthorizer(cfg.Headers))
	}
	if cfg.BearerToken != "" {
		chain = append(chain, BearerToken(cfg.BearerToken))
	}

	switch len(chain) {
	case 0:
		return noAuthorizer{}
	case 1:
		return chain[0]
	}

	return AuthorizerFunc(func(req *http.Request) error {
		for _, a := range chain {
			if err := a.Authorize(req); err != nil {
				return err
			}
		}
		return nil
	})
}
