package handlers

import (
	"net/http"
	"strconv"

	"github.com/flow-hydraulics/account-keeper/accounts"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// ListFunc returns the accounts in stored order.
func (s *Accounts) ListFunc(rw http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.FormValue("limit"))
	if err != nil {
		limit = 0
	}

	offset, err := strconv.Atoi(r.FormValue("offset"))
	if err != nil {
		offset = 0
	}

	res := s.service.List(limit, offset)

	handleJsonResponse(rw, http.StatusOK, res)
}

// CreateFunc appends the account in the request body.
// An account without an id gets a random one.
func (s *Accounts) CreateFunc(rw http.ResponseWriter, r *http.Request) {
	a := accounts.Account{}
	if err := decodeBody(r, &a); err != nil {
		handleError(rw, nil, err)
		return
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	if err := s.service.Create(a); err != nil {
		handleError(rw, log.WithFields(log.Fields{"id": a.ID}), err)
		return
	}

	handleJsonResponse(rw, http.StatusCreated, a)
}

// DetailsFunc returns the first account with the id from URL.
func (s *Accounts) DetailsFunc(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	res, err := s.service.Details(vars["id"])
	if err != nil {
		handleError(rw, nil, err)
		return
	}

	handleJsonResponse(rw, http.StatusOK, res)
}

// UpdateFunc replaces the account with the id from URL by the request body.
// The id in the URL takes precedence over one in the body.
func (s *Accounts) UpdateFunc(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	a := accounts.Account{}
	if err := decodeBody(r, &a); err != nil {
		handleError(rw, nil, err)
		return
	}
	a.ID = vars["id"]

	if err := s.service.Update(a); err != nil {
		handleError(rw, log.WithFields(log.Fields{"id": a.ID}), err)
		return
	}

	handleJsonResponse(rw, http.StatusOK, a)
}

// RemoveFunc removes every account with the id from URL.
func (s *Accounts) RemoveFunc(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := s.service.Remove(vars["id"]); err != nil {
		handleError(rw, log.WithFields(log.Fields{"id": vars["id"]}), err)
		return
	}

	rw.WriteHeader(http.StatusOK)
}
