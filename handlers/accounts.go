package handlers

import (
	"net/http"

	"github.com/flow-hydraulics/account-keeper/accounts"
)

// Accounts is a HTTP server for account management.
// It provides list, create, details, update and remove APIs.
// It uses an account service to interface with data.
type Accounts struct {
	service *accounts.Service
}

// NewAccounts initiates a new accounts server.
func NewAccounts(service *accounts.Service) *Accounts {
	return &Accounts{service}
}

func (s *Accounts) List() http.Handler {
	return http.HandlerFunc(s.ListFunc)
}

func (s *Accounts) Create() http.Handler {
	return http.HandlerFunc(s.CreateFunc)
}

func (s *Accounts) Details() http.Handler {
	return http.HandlerFunc(s.DetailsFunc)
}

func (s *Accounts) Update() http.Handler {
	return http.HandlerFunc(s.UpdateFunc)
}

func (s *Accounts) Remove() http.Handler {
	return http.HandlerFunc(s.RemoveFunc)
}
