package client

import (
	"slices"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// Endpoint describes one API operation. Endpoints are package-level values and are
// never modified after declaration.
type Endpoint struct {
	Method string
	// Path is a template whose ":name" segments are filled from Payload.Path.
	Path string
	// AccessTokens lists the token types the endpoint accepts. Empty means the call is
	// sent without an Authorization header.
	AccessTokens []lark.AccessTokenType
}

// Accepts reports whether the endpoint takes tokens of the given type.
func (e *Endpoint) Accepts(tokenType lark.AccessTokenType) bool {
	return slices.Contains(e.AccessTokens, tokenType)
}

// ResolvedRequest is a payload after formatting: headers decided, tokens attached.
// It belongs to a single invocation.
type ResolvedRequest struct {
	Headers map[string]string
	Params  lark.Params
	Data    interface{}
	Path    map[string]string
}

var (
	tenantToken     = []lark.AccessTokenType{lark.AccessTokenTypeTenant}
	userToken       = []lark.AccessTokenType{lark.AccessTokenTypeUser}
	appToken        = []lark.AccessTokenType{lark.AccessTokenTypeApp}
	tenantUserToken = []lark.AccessTokenType{lark.AccessTokenTypeTenant, lark.AccessTokenTypeUser}
)
