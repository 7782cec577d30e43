// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todolist). This root
// package holds the sentinel errors and typed errors that the store layer
// raises and the HTTP adapter maps to status codes.
package domain
