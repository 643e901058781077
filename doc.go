// Package main provides the entry point for the AmigoVet content server.
// It runs a Fiber web service exposing the public content API of a
// veterinary clinic website (settings-driven marketing sections, photo
// gallery, lost pet board, contact form) together with a session-gated
// admin API for managing that content. Persistence is handled with gorm.
package main
