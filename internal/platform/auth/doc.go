// Package auth implements the admin credential ports: HS256 bearer tokens
// with github.com/golang-jwt/jwt/v5 and password hashing with bcrypt.
//
// Both types are safe for concurrent use.
//
//	issuer := auth.NewTokenIssuer(cfg.Auth)
//	tok, err := issuer.Issue(admin)
//	principal, err := issuer.Verify(tok.Value)
package auth
